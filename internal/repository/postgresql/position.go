package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

const positionSelect = `
	SELECT p.id, p.department_id, p.name, p.seniority_level, p.min_salary, p.max_salary,
		p.default_benefits, p.created_at, p.updated_at, d.name
	FROM positions p
	JOIN departments d ON d.id = p.department_id
`

func scanPosition(row pgx.Row) (position.Position, error) {
	var p position.Position
	var departmentName string
	err := row.Scan(
		&p.ID,
		&p.DepartmentID,
		&p.Name,
		&p.SeniorityLevel,
		&p.MinSalary,
		&p.MaxSalary,
		&p.DefaultBenefits,
		&p.CreatedAt,
		&p.UpdatedAt,
		&departmentName,
	)
	if err != nil {
		return position.Position{}, err
	}
	p.Department = &department.Summary{ID: p.DepartmentID, Name: departmentName}
	return p, nil
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (department_id, name, seniority_level, min_salary, max_salary, default_benefits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		p.DepartmentID,
		p.Name,
		p.SeniorityLevel,
		p.MinSalary,
		p.MaxSalary,
		p.DefaultBenefits,
	).Scan(&id)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id int64) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	result, err := scanPosition(q.QueryRow(ctx, positionSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return result, nil
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context, filter position.Filter) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("p.department_id = $%d", len(args)))
	}

	query := positionSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.name ASC, p.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	defer rows.Close()

	positions := []position.Position{}
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET department_id = $1, name = $2, seniority_level = $3, min_salary = $4,
			max_salary = $5, default_benefits = $6, updated_at = NOW()
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		p.DepartmentID,
		p.Name,
		p.SeniorityLevel,
		p.MinSalary,
		p.MaxSalary,
		p.DefaultBenefits,
		p.ID,
	)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to update position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return position.Position{}, position.ErrPositionNotFound
	}

	return r.GetByID(ctx, p.ID)
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// Exists implements position.PositionRepository.
func (r *positionRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM positions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check position: %w", err)
	}
	return exists, nil
}

// NameTaken implements position.PositionRepository.
func (r *positionRepositoryImpl) NameTaken(ctx context.Context, departmentID int64, name string, exceptID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var taken bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM positions WHERE department_id = $1 AND name = $2 AND id <> $3)`,
		departmentID, name, exceptID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("failed to check position name: %w", err)
	}
	return taken, nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/fasthr/hr-backend-go/internal/domain/stats"
	"github.com/fasthr/hr-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

func (r *statsRepositoryImpl) count(ctx context.Context, table string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return total, nil
}

func (r *statsRepositoryImpl) CountDepartments(ctx context.Context) (int64, error) {
	return r.count(ctx, "departments")
}

func (r *statsRepositoryImpl) CountPositions(ctx context.Context) (int64, error) {
	return r.count(ctx, "positions")
}

// PositionsByDepartment returns one row per department that owns positions, largest first
func (r *statsRepositoryImpl) PositionsByDepartment(ctx context.Context) ([]stats.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department_id, COUNT(*) AS total
		FROM positions
		GROUP BY department_id
		ORDER BY total DESC, department_id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions by department: %w", err)
	}
	defer rows.Close()

	result := []stats.DepartmentCount{}
	for rows.Next() {
		var item stats.DepartmentCount
		if err := rows.Scan(&item.DepartmentID, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// TopDepartmentsByPositions ranks departments that own positions by position count, ties by lowest id
func (r *statsRepositoryImpl) TopDepartmentsByPositions(ctx context.Context, limit int) ([]stats.TopDepartment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, COUNT(p.id) AS positions_count
		FROM departments d
		JOIN positions p ON p.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY positions_count DESC, d.id ASC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top departments: %w", err)
	}
	defer rows.Close()

	result := []stats.TopDepartment{}
	for rows.Next() {
		var item stats.TopDepartment
		if err := rows.Scan(&item.DepartmentID, &item.DepartmentName, &item.PositionsCount); err != nil {
			return nil, fmt.Errorf("failed to scan top department: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// UserAggregate returns totals and the role breakdown, most common role first
func (r *statsRepositoryImpl) UserAggregate(ctx context.Context) (stats.UserAggregate, error) {
	q := GetQuerier(ctx, r.db)

	var agg stats.UserAggregate
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status THEN 1 ELSE 0 END), 0) AS active
		FROM users
	`).Scan(&agg.Total, &agg.Active)
	if err != nil {
		return stats.UserAggregate{}, fmt.Errorf("failed to get user summary: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT role, COUNT(*) AS total FROM users GROUP BY role ORDER BY total DESC, role ASC`)
	if err != nil {
		return stats.UserAggregate{}, fmt.Errorf("failed to get users by role: %w", err)
	}
	defer rows.Close()

	agg.ByRole = []stats.RoleCount{}
	for rows.Next() {
		var item stats.RoleCount
		if err := rows.Scan(&item.Role, &item.Count); err != nil {
			return stats.UserAggregate{}, fmt.Errorf("failed to scan role count: %w", err)
		}
		agg.ByRole = append(agg.ByRole, item)
	}
	if err := rows.Err(); err != nil {
		return stats.UserAggregate{}, err
	}
	return agg, nil
}

// PayrollAggregate returns count, sums and the status breakdown for one period year, most common status first
func (r *statsRepositoryImpl) PayrollAggregate(ctx context.Context, year int) (stats.PayrollAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(base_salary), 0) AS sum_base_salary,
			COALESCE(SUM(net_amount), 0) AS sum_net_amount
		FROM payroll_records
		WHERE period_year = $1
	`

	var agg stats.PayrollAggregate
	if err := q.QueryRow(ctx, query, year).Scan(&agg.Count, &agg.SumBaseSalary, &agg.SumNetAmount); err != nil {
		return stats.PayrollAggregate{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT status, COUNT(*) AS total
		FROM payroll_records
		WHERE period_year = $1
		GROUP BY status
		ORDER BY total DESC, status ASC
	`, year)
	if err != nil {
		return stats.PayrollAggregate{}, fmt.Errorf("failed to get payroll by status: %w", err)
	}
	defer rows.Close()

	agg.ByStatus = []stats.StatusCount{}
	for rows.Next() {
		var item stats.StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return stats.PayrollAggregate{}, fmt.Errorf("failed to scan status count: %w", err)
		}
		agg.ByStatus = append(agg.ByStatus, item)
	}
	if err := rows.Err(); err != nil {
		return stats.PayrollAggregate{}, err
	}
	return agg, nil
}

// ReviewAggregate returns total, average score rounded to 2 places and the salary impact count
func (r *statsRepositoryImpl) ReviewAggregate(ctx context.Context) (stats.ReviewAggregate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(ROUND(AVG(overall_score), 2), 0) AS avg_score,
			COALESCE(SUM(CASE WHEN has_salary_impact THEN 1 ELSE 0 END), 0) AS with_impact
		FROM performance_reviews
	`

	var agg stats.ReviewAggregate
	if err := q.QueryRow(ctx, query).Scan(&agg.Total, &agg.AverageScore, &agg.WithSalaryImpact); err != nil {
		return stats.ReviewAggregate{}, fmt.Errorf("failed to get review summary: %w", err)
	}
	return agg, nil
}

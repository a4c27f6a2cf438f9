package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/review"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewSelect = `
	SELECT r.id, r.employee_id, r.hr_worker_id, r.payroll_record_id, r.period_start, r.period_end,
		r.overall_score, r.comments, r.goals, r.has_salary_impact, r.created_at, r.updated_at,
		e.name, e.email, h.name, h.email,
		pr.period_year, pr.period_month, pr.status
	FROM performance_reviews r
	JOIN users e ON e.id = r.employee_id
	JOIN users h ON h.id = r.hr_worker_id
	JOIN payroll_records pr ON pr.id = r.payroll_record_id
`

func scanReview(row pgx.Row) (review.PerformanceReview, error) {
	var (
		rv                          review.PerformanceReview
		employeeName, employeeEmail string
		hrName, hrEmail             string
		summary                     payroll.Summary
	)
	err := row.Scan(
		&rv.ID,
		&rv.EmployeeID,
		&rv.HRWorkerID,
		&rv.PayrollRecordID,
		&rv.PeriodStart,
		&rv.PeriodEnd,
		&rv.OverallScore,
		&rv.Comments,
		&rv.Goals,
		&rv.HasSalaryImpact,
		&rv.CreatedAt,
		&rv.UpdatedAt,
		&employeeName,
		&employeeEmail,
		&hrName,
		&hrEmail,
		&summary.PeriodYear,
		&summary.PeriodMonth,
		&summary.Status,
	)
	if err != nil {
		return review.PerformanceReview{}, err
	}
	summary.ID = rv.PayrollRecordID
	rv.Employee = &user.Summary{ID: rv.EmployeeID, Name: employeeName, Email: employeeEmail}
	rv.HRWorker = &user.Summary{ID: rv.HRWorkerID, Name: hrName, Email: hrEmail}
	rv.PayrollRecord = &summary
	return rv, nil
}

// Create implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, rv review.PerformanceReview) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			employee_id, hr_worker_id, payroll_record_id, period_start, period_end,
			overall_score, comments, goals, has_salary_impact, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		rv.EmployeeID,
		rv.HRWorkerID,
		rv.PayrollRecordID,
		rv.PeriodStart,
		rv.PeriodEnd,
		rv.OverallScore,
		rv.Comments,
		rv.Goals,
		rv.HasSalaryImpact,
	).Scan(&id)
	if err != nil {
		return review.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements review.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id int64) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	result, err := scanReview(q.QueryRow(ctx, reviewSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return review.PerformanceReview{}, review.ErrReviewNotFound
		}
		return review.PerformanceReview{}, fmt.Errorf("failed to get performance review: %w", err)
	}
	return result, nil
}

// List implements review.ReviewRepository. Most recent periods come first.
func (r *reviewRepositoryImpl) List(ctx context.Context, filter review.Filter) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", len(args)))
	}
	if filter.HRWorkerID != nil {
		args = append(args, *filter.HRWorkerID)
		conditions = append(conditions, fmt.Sprintf("r.hr_worker_id = $%d", len(args)))
	}
	if filter.PayrollRecordID != nil {
		args = append(args, *filter.PayrollRecordID)
		conditions = append(conditions, fmt.Sprintf("r.payroll_record_id = $%d", len(args)))
	}
	if filter.HasSalaryImpact != nil {
		args = append(args, *filter.HasSalaryImpact)
		conditions = append(conditions, fmt.Sprintf("r.has_salary_impact = $%d", len(args)))
	}

	query := reviewSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.period_end DESC, r.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get performance reviews: %w", err)
	}
	defer rows.Close()

	reviews := []review.PerformanceReview{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reviews, nil
}

// Update implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Update(ctx context.Context, rv review.PerformanceReview) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET employee_id = $1, hr_worker_id = $2, payroll_record_id = $3, period_start = $4,
			period_end = $5, overall_score = $6, comments = $7, goals = $8,
			has_salary_impact = $9, updated_at = NOW()
		WHERE id = $10
	`

	commandTag, err := q.Exec(ctx, query,
		rv.EmployeeID,
		rv.HRWorkerID,
		rv.PayrollRecordID,
		rv.PeriodStart,
		rv.PeriodEnd,
		rv.OverallScore,
		rv.Comments,
		rv.Goals,
		rv.HasSalaryImpact,
		rv.ID,
	)
	if err != nil {
		return review.PerformanceReview{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return review.PerformanceReview{}, review.ErrReviewNotFound
	}

	return r.GetByID(ctx, rv.ID)
}

// Delete implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

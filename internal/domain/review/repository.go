package review

import "context"

// ReviewRepository reads return reviews with employee, hr_worker and payroll_record summaries joined.
type ReviewRepository interface {
	Create(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id int64) (PerformanceReview, error)
	List(ctx context.Context, filter Filter) ([]PerformanceReview, error)
	Update(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	Delete(ctx context.Context, id int64) error
}

package review

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const msgPeriodOrder = "Period End must be after or equal to Period Start"

type CreateReviewRequest struct {
	EmployeeID      *int64           `json:"employee_id" validate:"required,gt=0"`
	HRWorkerID      *int64           `json:"hr_worker_id" validate:"required,gt=0"`
	PayrollRecordID *int64           `json:"payroll_record_id" validate:"required,gt=0"`
	PeriodStart     string           `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd       string           `json:"period_end" validate:"required,datetime=2006-01-02"`
	OverallScore    *decimal.Decimal `json:"overall_score" validate:"required,gte=0,lte=5"`
	Comments        *string          `json:"comments"`
	Goals           *string          `json:"goals"`
	HasSalaryImpact *bool            `json:"hasSalaryImpact"`
}

func (r *CreateReviewRequest) Validate() error {
	errs := validator.Struct(r)

	if !errs.Has("period_start") && !errs.Has("period_end") {
		start, _ := validator.ParseDate(r.PeriodStart)
		end, _ := validator.ParseDate(r.PeriodEnd)
		if end.Before(start) {
			errs.Add("period_end", msgPeriodOrder)
		}
	}

	return errs.OrNil()
}

func (r *CreateReviewRequest) ToEntity() PerformanceReview {
	start, _ := validator.ParseDate(r.PeriodStart)
	end, _ := validator.ParseDate(r.PeriodEnd)

	review := PerformanceReview{
		EmployeeID:      *r.EmployeeID,
		HRWorkerID:      *r.HRWorkerID,
		PayrollRecordID: *r.PayrollRecordID,
		PeriodStart:     start,
		PeriodEnd:       end,
		OverallScore:    r.OverallScore.Round(2),
		Comments:        r.Comments,
		Goals:           r.Goals,
	}
	if r.HasSalaryImpact != nil {
		review.HasSalaryImpact = *r.HasSalaryImpact
	}
	return review
}

// UpdateReviewRequest carries a partial update; nil fields keep their stored value.
type UpdateReviewRequest struct {
	ID              int64            `json:"-"`
	EmployeeID      *int64           `json:"employee_id" validate:"omitempty,gt=0"`
	HRWorkerID      *int64           `json:"hr_worker_id" validate:"omitempty,gt=0"`
	PayrollRecordID *int64           `json:"payroll_record_id" validate:"omitempty,gt=0"`
	PeriodStart     *string          `json:"period_start" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd       *string          `json:"period_end" validate:"omitempty,datetime=2006-01-02"`
	OverallScore    *decimal.Decimal `json:"overall_score" validate:"omitempty,gte=0,lte=5"`
	Comments        *string          `json:"comments"`
	Goals           *string          `json:"goals"`
	HasSalaryImpact *bool            `json:"hasSalaryImpact"`
}

func (r *UpdateReviewRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// Apply merges the update into the stored review and rejects a period that ends
// before it starts, whether one or both bounds were supplied.
func (r *UpdateReviewRequest) Apply(stored PerformanceReview) (PerformanceReview, error) {
	updated := stored

	if r.EmployeeID != nil {
		if *r.EmployeeID != stored.EmployeeID {
			updated.Employee = nil
		}
		updated.EmployeeID = *r.EmployeeID
	}
	if r.HRWorkerID != nil {
		if *r.HRWorkerID != stored.HRWorkerID {
			updated.HRWorker = nil
		}
		updated.HRWorkerID = *r.HRWorkerID
	}
	if r.PayrollRecordID != nil {
		if *r.PayrollRecordID != stored.PayrollRecordID {
			updated.PayrollRecord = nil
		}
		updated.PayrollRecordID = *r.PayrollRecordID
	}
	if r.PeriodStart != nil {
		updated.PeriodStart, _ = validator.ParseDate(*r.PeriodStart)
	}
	if r.PeriodEnd != nil {
		updated.PeriodEnd, _ = validator.ParseDate(*r.PeriodEnd)
	}
	if r.OverallScore != nil {
		updated.OverallScore = r.OverallScore.Round(2)
	}
	if r.Comments != nil {
		updated.Comments = r.Comments
	}
	if r.Goals != nil {
		updated.Goals = r.Goals
	}
	if r.HasSalaryImpact != nil {
		updated.HasSalaryImpact = *r.HasSalaryImpact
	}

	if updated.PeriodEnd.Before(updated.PeriodStart) {
		return PerformanceReview{}, validator.Field("period_end", msgPeriodOrder)
	}

	return updated, nil
}

// ListReviewsRequest holds the optional query filters of GET /performance-reviews.
type ListReviewsRequest struct {
	EmployeeID      *int64 `json:"employee_id" validate:"omitempty,gt=0"`
	HRWorkerID      *int64 `json:"hr_worker_id" validate:"omitempty,gt=0"`
	PayrollRecordID *int64 `json:"payroll_record_id" validate:"omitempty,gt=0"`
	HasSalaryImpact *bool  `json:"hasSalaryImpact"`
}

func (r *ListReviewsRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

func (r ListReviewsRequest) Filter() Filter {
	return Filter{
		EmployeeID:      r.EmployeeID,
		HRWorkerID:      r.HRWorkerID,
		PayrollRecordID: r.PayrollRecordID,
		HasSalaryImpact: r.HasSalaryImpact,
	}
}

type ReviewResponse struct {
	ID              int64            `json:"id"`
	EmployeeID      int64            `json:"employee_id"`
	HRWorkerID      int64            `json:"hr_worker_id"`
	PayrollRecordID int64            `json:"payroll_record_id"`
	PeriodStart     string           `json:"period_start"`
	PeriodEnd       string           `json:"period_end"`
	OverallScore    decimal.Decimal  `json:"overall_score"`
	Comments        *string          `json:"comments"`
	Goals           *string          `json:"goals"`
	HasSalaryImpact bool             `json:"hasSalaryImpact"`
	Employee        *user.Summary    `json:"employee,omitempty"`
	HRWorker        *user.Summary    `json:"hr_worker,omitempty"`
	PayrollRecord   *payroll.Summary `json:"payroll_record,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func ToResponse(r PerformanceReview) ReviewResponse {
	return ReviewResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		HRWorkerID:      r.HRWorkerID,
		PayrollRecordID: r.PayrollRecordID,
		PeriodStart:     r.PeriodStart.Format(time.DateOnly),
		PeriodEnd:       r.PeriodEnd.Format(time.DateOnly),
		OverallScore:    r.OverallScore,
		Comments:        r.Comments,
		Goals:           r.Goals,
		HasSalaryImpact: r.HasSalaryImpact,
		Employee:        r.Employee,
		HRWorker:        r.HRWorker,
		PayrollRecord:   r.PayrollRecord,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

package review

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/review"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/fasthr/hr-backend-go/internal/repository/postgresql"
)

type ReviewServiceImpl struct {
	reviewRepo  review.ReviewRepository
	userRepo    user.UserRepository
	payrollRepo payroll.PayrollRepository
}

func NewReviewService(
	reviewRepo review.ReviewRepository,
	userRepo user.UserRepository,
	payrollRepo payroll.PayrollRepository,
) review.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		payrollRepo: payrollRepo,
	}
}

// List implements review.ReviewService. Callers without review.view_all only see their own reviews.
func (s *ReviewServiceImpl) List(ctx context.Context, principal auth.Principal, req review.ListReviewsRequest) ([]review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := req.Filter()
	if !principal.Can(user.PermissionReviewViewAll) {
		filter.EmployeeID = &principal.UserID
	}

	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]review.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		responses = append(responses, review.ToResponse(rv))
	}
	return responses, nil
}

// Create implements review.ReviewService.
func (s *ReviewServiceImpl) Create(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	if err := s.checkReferences(ctx, req.EmployeeID, req.HRWorkerID, req.PayrollRecordID); err != nil {
		return review.ReviewResponse{}, err
	}

	created, err := s.reviewRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return review.ReviewResponse{}, mapWriteError(err)
	}

	return review.ToResponse(created), nil
}

// Get implements review.ReviewService.
func (s *ReviewServiceImpl) Get(ctx context.Context, principal auth.Principal, id int64) (review.ReviewResponse, error) {
	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	if !principal.Can(user.PermissionReviewViewAll) && !principal.IsSelf(rv.EmployeeID) {
		return review.ReviewResponse{}, review.ErrReviewAccessDenied
	}

	return review.ToResponse(rv), nil
}

// Update implements review.ReviewService.
func (s *ReviewServiceImpl) Update(ctx context.Context, req review.UpdateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	stored, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	merged, err := req.Apply(stored)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	if err := s.checkReferences(ctx, req.EmployeeID, req.HRWorkerID, req.PayrollRecordID); err != nil {
		return review.ReviewResponse{}, err
	}

	updated, err := s.reviewRepo.Update(ctx, merged)
	if err != nil {
		return review.ReviewResponse{}, mapWriteError(err)
	}

	return review.ToResponse(updated), nil
}

// Delete implements review.ReviewService.
func (s *ReviewServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.reviewRepo.Delete(ctx, id)
}

// checkReferences verifies every supplied foreign key and reports all missing ones together.
func (s *ReviewServiceImpl) checkReferences(ctx context.Context, employeeID, hrWorkerID, payrollRecordID *int64) error {
	var errs validator.ValidationErrors

	userRefs := []struct {
		field string
		id    *int64
	}{
		{"employee_id", employeeID},
		{"hr_worker_id", hrWorkerID},
	}
	for _, ref := range userRefs {
		if ref.id == nil {
			continue
		}
		exists, err := s.userRepo.Exists(ctx, *ref.id)
		if err != nil {
			return err
		}
		if !exists {
			errs = append(errs, validator.InvalidReference(ref.field)...)
		}
	}

	if payrollRecordID != nil {
		exists, err := s.payrollRepo.Exists(ctx, *payrollRecordID)
		if err != nil {
			return err
		}
		if !exists {
			errs = append(errs, validator.InvalidReference("payroll_record_id")...)
		}
	}

	return errs.OrNil()
}

func mapWriteError(err error) error {
	switch {
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintReviewEmployee):
		return validator.InvalidReference("employee_id")
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintReviewHRWorker):
		return validator.InvalidReference("hr_worker_id")
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintReviewPayrollRecord):
		return validator.InvalidReference("payroll_record_id")
	}
	return err
}

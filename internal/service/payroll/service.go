package payroll

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/fasthr/hr-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, userRepo user.UserRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
	}
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, principal auth.Principal, req payroll.ListPayrollRecordsRequest) ([]payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := req.Filter()
	if !principal.Can(user.PermissionPayrollViewAll) {
		filter.EmployeeID = &principal.UserID
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, payroll.ToResponse(r))
	}
	return responses, nil
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if err := s.checkUsers(ctx, req.EmployeeID, req.HRWorkerID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record := req.ToEntity()
	if err := payroll.CheckNet(record); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	taken, err := s.payrollRepo.PeriodTaken(ctx, record.EmployeeID, record.PeriodYear, record.PeriodMonth, 0)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if taken {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAlreadyExists
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, mapWriteError(err)
	}

	return payroll.ToResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, principal auth.Principal, id int64) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if !principal.Can(user.PermissionPayrollViewAll) && !principal.IsSelf(record.EmployeeID) {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAccessDenied
	}

	return payroll.ToResponse(record), nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	stored, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if err := s.checkUsers(ctx, req.EmployeeID, req.HRWorkerID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	merged := req.Apply(stored)
	if err := payroll.CheckNet(merged); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if req.TouchesPeriod() {
		taken, err := s.payrollRepo.PeriodTaken(ctx, merged.EmployeeID, merged.PeriodYear, merged.PeriodMonth, merged.ID)
		if err != nil {
			return payroll.PayrollRecordResponse{}, err
		}
		if taken {
			return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordAlreadyExists
		}
	}

	updated, err := s.payrollRepo.Update(ctx, merged)
	if err != nil {
		return payroll.PayrollRecordResponse{}, mapWriteError(err)
	}

	return payroll.ToResponse(updated), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.payrollRepo.Delete(ctx, id); err != nil {
		if postgresql.IsForeignKeyViolation(err, postgresql.ConstraintReviewPayrollRecord) {
			return payroll.ErrPayrollRecordInUse
		}
		return err
	}
	return nil
}

// checkUsers verifies that the supplied employee and hr_worker ids exist.
func (s *PayrollServiceImpl) checkUsers(ctx context.Context, employeeID, hrWorkerID *int64) error {
	var errs validator.ValidationErrors

	refs := []struct {
		field string
		id    *int64
	}{
		{"employee_id", employeeID},
		{"hr_worker_id", hrWorkerID},
	}
	for _, ref := range refs {
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

	return errs.OrNil()
}

func mapWriteError(err error) error {
	switch {
	case postgresql.IsUniqueViolation(err, postgresql.ConstraintPayrollPeriod):
		return payroll.ErrPayrollRecordAlreadyExists
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintPayrollEmployee):
		return validator.InvalidReference("employee_id")
	case postgresql.IsForeignKeyViolation(err, postgresql.ConstraintPayrollHRWorker):
		return validator.InvalidReference("hr_worker_id")
	}
	return err
}

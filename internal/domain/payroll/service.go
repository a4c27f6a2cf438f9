package payroll

import (
	"context"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
)

// PayrollService scopes reads to the caller's own records unless it holds payroll.view_all.
type PayrollService interface {
	List(ctx context.Context, principal auth.Principal, req ListPayrollRecordsRequest) ([]PayrollRecordResponse, error)
	Create(ctx context.Context, req CreatePayrollRecordRequest) (PayrollRecordResponse, error)
	Get(ctx context.Context, principal auth.Principal, id int64) (PayrollRecordResponse, error)
	Update(ctx context.Context, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	Delete(ctx context.Context, id int64) error
}

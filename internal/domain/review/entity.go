package review

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type PerformanceReview struct {
	ID              int64
	EmployeeID      int64
	HRWorkerID      int64
	PayrollRecordID int64
	PeriodStart     time.Time
	PeriodEnd       time.Time
	OverallScore    decimal.Decimal
	Comments        *string
	Goals           *string
	HasSalaryImpact bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	Employee      *user.Summary
	HRWorker      *user.Summary
	PayrollRecord *payroll.Summary
}

type Filter struct {
	EmployeeID      *int64
	HRWorkerID      *int64
	PayrollRecordID *int64
	HasSalaryImpact *bool
}

package payroll

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

// PayrollRecord - one employee's pay for one month
type PayrollRecord struct {
	ID               int64
	EmployeeID       int64
	HRWorkerID       int64
	PeriodYear       int
	PeriodMonth      int
	BaseSalary       decimal.Decimal
	BonusAmount      decimal.Decimal
	OvertimeAmount   decimal.Decimal
	BenefitsAmount   decimal.Decimal
	DeductionsAmount decimal.Decimal
	NetAmount        decimal.NullDecimal
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	Employee *user.Summary
	HRWorker *user.Summary
}

// Summary is the compact payroll projection nested in review payloads.
type Summary struct {
	ID          int64  `json:"id"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`
	Status      Status `json:"status"`
}

type Filter struct {
	EmployeeID  *int64
	PeriodYear  *int
	PeriodMonth *int
	Status      *Status
}

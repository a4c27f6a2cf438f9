package payroll

import (
	"time"

	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRecordRequest struct {
	EmployeeID       *int64           `json:"employee_id" validate:"required,gt=0"`
	HRWorkerID       *int64           `json:"hr_worker_id" validate:"required,gt=0"`
	PeriodYear       *int             `json:"period_year" validate:"required,gte=2000,lte=2100"`
	PeriodMonth      *int             `json:"period_month" validate:"required,gte=1,lte=12"`
	BaseSalary       *decimal.Decimal `json:"base_salary" validate:"required,gte=0,lte=9999999999.99"`
	BonusAmount      *decimal.Decimal `json:"bonus_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	OvertimeAmount   *decimal.Decimal `json:"overtime_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	BenefitsAmount   *decimal.Decimal `json:"benefits_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	DeductionsAmount *decimal.Decimal `json:"deductions_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	NetAmount        *decimal.Decimal `json:"net_amount" validate:"omitempty,gte=-9999999999.99,lte=9999999999.99"`
	Status           *Status          `json:"status" validate:"required,oneof=draft approved paid"`
}

func (r *CreatePayrollRecordRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// ToEntity builds the record to insert. Amounts are rounded to cents, missing optional
// amounts are 0 and a missing net_amount is derived from the components.
func (r *CreatePayrollRecordRequest) ToEntity() PayrollRecord {
	record := PayrollRecord{
		EmployeeID:       *r.EmployeeID,
		HRWorkerID:       *r.HRWorkerID,
		PeriodYear:       *r.PeriodYear,
		PeriodMonth:      *r.PeriodMonth,
		BaseSalary:       r.BaseSalary.Round(2),
		BonusAmount:      orZero(r.BonusAmount),
		OvertimeAmount:   orZero(r.OvertimeAmount),
		BenefitsAmount:   orZero(r.BenefitsAmount),
		DeductionsAmount: orZero(r.DeductionsAmount),
		Status:           *r.Status,
	}

	if r.NetAmount != nil {
		record.NetAmount = decimal.NewNullDecimal(r.NetAmount.Round(2))
	} else {
		record.NetAmount = decimal.NewNullDecimal(AmountsOf(record).Net())
	}
	return record
}

// UpdatePayrollRecordRequest carries a partial update; nil fields keep their stored value.
type UpdatePayrollRecordRequest struct {
	ID               int64            `json:"-"`
	EmployeeID       *int64           `json:"employee_id" validate:"omitempty,gt=0"`
	HRWorkerID       *int64           `json:"hr_worker_id" validate:"omitempty,gt=0"`
	PeriodYear       *int             `json:"period_year" validate:"omitempty,gte=2000,lte=2100"`
	PeriodMonth      *int             `json:"period_month" validate:"omitempty,gte=1,lte=12"`
	BaseSalary       *decimal.Decimal `json:"base_salary" validate:"omitempty,gte=0,lte=9999999999.99"`
	BonusAmount      *decimal.Decimal `json:"bonus_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	OvertimeAmount   *decimal.Decimal `json:"overtime_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	BenefitsAmount   *decimal.Decimal `json:"benefits_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	DeductionsAmount *decimal.Decimal `json:"deductions_amount" validate:"omitempty,gte=0,lte=9999999999.99"`
	NetAmount        *decimal.Decimal `json:"net_amount" validate:"omitempty,gte=-9999999999.99,lte=9999999999.99"`
	Status           *Status          `json:"status" validate:"omitempty,oneof=draft approved paid"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// TouchesAmounts reports whether any net component is part of the update.
func (r *UpdatePayrollRecordRequest) TouchesAmounts() bool {
	return r.BaseSalary != nil ||
		r.BonusAmount != nil ||
		r.OvertimeAmount != nil ||
		r.BenefitsAmount != nil ||
		r.DeductionsAmount != nil
}

// TouchesPeriod reports whether the update can move the record onto another employee/period slot.
func (r *UpdatePayrollRecordRequest) TouchesPeriod() bool {
	return r.EmployeeID != nil || r.PeriodYear != nil || r.PeriodMonth != nil
}

// Apply merges the update into the stored record. When a component changes and no
// net_amount is supplied, net is recomputed from the merged components.
func (r *UpdatePayrollRecordRequest) Apply(stored PayrollRecord) PayrollRecord {
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
	if r.PeriodYear != nil {
		updated.PeriodYear = *r.PeriodYear
	}
	if r.PeriodMonth != nil {
		updated.PeriodMonth = *r.PeriodMonth
	}
	if r.Status != nil {
		updated.Status = *r.Status
	}

	updated.BaseSalary = orStored(r.BaseSalary, stored.BaseSalary)
	updated.BonusAmount = orStored(r.BonusAmount, stored.BonusAmount)
	updated.OvertimeAmount = orStored(r.OvertimeAmount, stored.OvertimeAmount)
	updated.BenefitsAmount = orStored(r.BenefitsAmount, stored.BenefitsAmount)
	updated.DeductionsAmount = orStored(r.DeductionsAmount, stored.DeductionsAmount)

	switch {
	case r.NetAmount != nil:
		updated.NetAmount = decimal.NewNullDecimal(r.NetAmount.Round(2))
	case r.TouchesAmounts():
		updated.NetAmount = decimal.NewNullDecimal(AmountsOf(updated).Net())
	}

	return updated
}

// ListPayrollRecordsRequest holds the optional query filters of GET /payroll-records.
type ListPayrollRecordsRequest struct {
	EmployeeID  *int64  `json:"employee_id" validate:"omitempty,gt=0"`
	PeriodYear  *int    `json:"period_year" validate:"omitempty,gte=2000,lte=2100"`
	PeriodMonth *int    `json:"period_month" validate:"omitempty,gte=1,lte=12"`
	Status      *Status `json:"status" validate:"omitempty,oneof=draft approved paid"`
}

func (r *ListPayrollRecordsRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

func (r ListPayrollRecordsRequest) Filter() Filter {
	return Filter{
		EmployeeID:  r.EmployeeID,
		PeriodYear:  r.PeriodYear,
		PeriodMonth: r.PeriodMonth,
		Status:      r.Status,
	}
}

type PayrollRecordResponse struct {
	ID               int64               `json:"id"`
	EmployeeID       int64               `json:"employee_id"`
	HRWorkerID       int64               `json:"hr_worker_id"`
	PeriodYear       int                 `json:"period_year"`
	PeriodMonth      int                 `json:"period_month"`
	BaseSalary       decimal.Decimal     `json:"base_salary"`
	BonusAmount      decimal.Decimal     `json:"bonus_amount"`
	OvertimeAmount   decimal.Decimal     `json:"overtime_amount"`
	BenefitsAmount   decimal.Decimal     `json:"benefits_amount"`
	DeductionsAmount decimal.Decimal     `json:"deductions_amount"`
	NetAmount        decimal.NullDecimal `json:"net_amount"`
	Status           Status              `json:"status"`
	Employee         *user.Summary       `json:"employee,omitempty"`
	HRWorker         *user.Summary       `json:"hr_worker,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func ToResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		HRWorkerID:       r.HRWorkerID,
		PeriodYear:       r.PeriodYear,
		PeriodMonth:      r.PeriodMonth,
		BaseSalary:       r.BaseSalary,
		BonusAmount:      r.BonusAmount,
		OvertimeAmount:   r.OvertimeAmount,
		BenefitsAmount:   r.BenefitsAmount,
		DeductionsAmount: r.DeductionsAmount,
		NetAmount:        r.NetAmount,
		Status:           r.Status,
		Employee:         r.Employee,
		HRWorker:         r.HRWorker,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func ToSummary(r PayrollRecord) *Summary {
	return &Summary{
		ID:          r.ID,
		PeriodYear:  r.PeriodYear,
		PeriodMonth: r.PeriodMonth,
		Status:      r.Status,
	}
}

package payroll

import (
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a NUMERIC(12,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Amounts are the five components that make up a net amount.
type Amounts struct {
	Base       decimal.Decimal
	Bonus      decimal.Decimal
	Overtime   decimal.Decimal
	Benefits   decimal.Decimal
	Deductions decimal.Decimal
}

// Net returns base + bonus + overtime + benefits - deductions at column scale.
func (a Amounts) Net() decimal.Decimal {
	return a.Base.
		Add(a.Bonus).
		Add(a.Overtime).
		Add(a.Benefits).
		Sub(a.Deductions).
		Round(2)
}

// CheckNet rejects a net amount, supplied or derived, that the column cannot store.
func CheckNet(r PayrollRecord) error {
	if r.NetAmount.Valid && r.NetAmount.Decimal.Abs().GreaterThan(MaxAmount) {
		return validator.Field("net_amount", "Net Amount must not be greater than "+MaxAmount.StringFixed(2))
	}
	return nil
}

// AmountsOf extracts the components currently stored on r.
func AmountsOf(r PayrollRecord) Amounts {
	return Amounts{
		Base:       r.BaseSalary,
		Bonus:      r.BonusAmount,
		Overtime:   r.OvertimeAmount,
		Benefits:   r.BenefitsAmount,
		Deductions: r.DeductionsAmount,
	}
}

// orZero and orStored round supplied amounts to the NUMERIC(12,2) column scale.
func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return d.Round(2)
}

func orStored(d *decimal.Decimal, stored decimal.Decimal) decimal.Decimal {
	if d == nil {
		return stored
	}
	return d.Round(2)
}

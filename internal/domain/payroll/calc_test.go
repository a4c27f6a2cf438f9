package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

func statusPtr(s Status) *Status { return &s }

func storedRecord() PayrollRecord {
	return PayrollRecord{
		ID:               7,
		EmployeeID:       1,
		HRWorkerID:       2,
		PeriodYear:       2024,
		PeriodMonth:      5,
		BaseSalary:       decimal.RequireFromString("1000"),
		BonusAmount:      decimal.RequireFromString("100"),
		OvertimeAmount:   decimal.RequireFromString("50"),
		BenefitsAmount:   decimal.RequireFromString("25"),
		DeductionsAmount: decimal.RequireFromString("75"),
		NetAmount:        decimal.NewNullDecimal(decimal.RequireFromString("1100")),
		Status:           StatusDraft,
	}
}

func TestAmounts_Net(t *testing.T) {
	a := Amounts{
		Base:       decimal.RequireFromString("1000.10"),
		Bonus:      decimal.RequireFromString("0.20"),
		Overtime:   decimal.RequireFromString("12.345"),
		Benefits:   decimal.Zero,
		Deductions: decimal.RequireFromString("100"),
	}
	assert.Equal(t, "912.65", a.Net().StringFixed(2))
}

func TestCreate_DerivesNetWithZeroDefaults(t *testing.T) {
	req := CreatePayrollRecordRequest{
		EmployeeID:       int64Ptr(1),
		HRWorkerID:       int64Ptr(2),
		PeriodYear:       intPtr(2024),
		PeriodMonth:      intPtr(1),
		BaseSalary:       dec("1000"),
		BonusAmount:      dec("200"),
		DeductionsAmount: dec("50"),
		Status:           statusPtr(StatusDraft),
	}
	require.NoError(t, req.Validate())

	record := req.ToEntity()
	require.True(t, record.NetAmount.Valid)
	assert.True(t, record.NetAmount.Decimal.Equal(decimal.RequireFromString("1150")))
	assert.True(t, record.OvertimeAmount.IsZero())
	assert.True(t, record.BenefitsAmount.IsZero())
}

func TestCreate_ExplicitNetIsKept(t *testing.T) {
	req := CreatePayrollRecordRequest{
		EmployeeID:  int64Ptr(1),
		HRWorkerID:  int64Ptr(2),
		PeriodYear:  intPtr(2024),
		PeriodMonth: intPtr(1),
		BaseSalary:  dec("1000"),
		NetAmount:   dec("999.99"),
		Status:      statusPtr(StatusPaid),
	}

	record := req.ToEntity()
	assert.Equal(t, "999.99", record.NetAmount.Decimal.StringFixed(2))
}

func TestCreate_Validation(t *testing.T) {
	req := CreatePayrollRecordRequest{
		EmployeeID:  int64Ptr(1),
		PeriodYear:  intPtr(1999),
		PeriodMonth: intPtr(13),
		BaseSalary:  dec("-1"),
		BonusAmount: dec("-5"),
	}

	err := req.Validate()
	require.Error(t, err)

	fields := []string{"hr_worker_id", "period_year", "period_month", "base_salary", "bonus_amount", "status"}
	for _, f := range fields {
		assert.Contains(t, err.Error(), f+":", f)
	}
}

func TestUpdate_RecomputesFromStoredValues(t *testing.T) {
	req := UpdatePayrollRecordRequest{BonusAmount: dec("300")}

	updated := req.Apply(storedRecord())

	// 1000 + 300 + 50 + 25 - 75
	assert.Equal(t, "1300.00", updated.NetAmount.Decimal.StringFixed(2))
	assert.True(t, updated.BaseSalary.Equal(decimal.RequireFromString("1000")))
}

func TestUpdate_ExplicitNetWins(t *testing.T) {
	req := UpdatePayrollRecordRequest{BaseSalary: dec("5000"), NetAmount: dec("1")}

	updated := req.Apply(storedRecord())

	assert.Equal(t, "1.00", updated.NetAmount.Decimal.StringFixed(2))
	assert.Equal(t, "5000.00", updated.BaseSalary.StringFixed(2))
}

func TestUpdate_NonMoneyFieldsKeepNet(t *testing.T) {
	req := UpdatePayrollRecordRequest{Status: statusPtr(StatusApproved)}

	updated := req.Apply(storedRecord())

	assert.Equal(t, StatusApproved, updated.Status)
	assert.Equal(t, "1100.00", updated.NetAmount.Decimal.StringFixed(2))
	assert.False(t, req.TouchesAmounts())
	assert.False(t, req.TouchesPeriod())
}

func TestUpdate_ChangingEmployeeDropsStaleSummary(t *testing.T) {
	stored := storedRecord()
	req := UpdatePayrollRecordRequest{EmployeeID: int64Ptr(9)}

	updated := req.Apply(stored)

	assert.Equal(t, int64(9), updated.EmployeeID)
	assert.Nil(t, updated.Employee)
	assert.True(t, req.TouchesPeriod())
}

func TestCreate_RoundsComponentsToCents(t *testing.T) {
	req := CreatePayrollRecordRequest{
		EmployeeID:     int64Ptr(1),
		HRWorkerID:     int64Ptr(2),
		PeriodYear:     intPtr(2024),
		PeriodMonth:    intPtr(1),
		BaseSalary:     dec("1000.005"),
		BonusAmount:    dec("0.005"),
		OvertimeAmount: dec("0.004"),
		Status:         statusPtr(StatusDraft),
	}
	require.NoError(t, req.Validate())

	record := req.ToEntity()

	assert.Equal(t, "1000.01", record.BaseSalary.String())
	assert.Equal(t, "0.01", record.BonusAmount.String())
	assert.True(t, record.OvertimeAmount.IsZero())
	sum := record.BaseSalary.Add(record.BonusAmount).Add(record.OvertimeAmount)
	assert.True(t, record.NetAmount.Decimal.Equal(sum), "net %s, components %s", record.NetAmount.Decimal, sum)
}

func TestUpdate_RoundsSuppliedComponents(t *testing.T) {
	req := UpdatePayrollRecordRequest{DeductionsAmount: dec("75.333"), NetAmount: nil}

	updated := req.Apply(storedRecord())

	assert.Equal(t, "75.33", updated.DeductionsAmount.String())
	assert.Equal(t, "1099.67", updated.NetAmount.Decimal.StringFixed(2))
}

func TestCreate_RejectsAmountsBeyondColumnScale(t *testing.T) {
	req := CreatePayrollRecordRequest{
		EmployeeID:  int64Ptr(1),
		HRWorkerID:  int64Ptr(2),
		PeriodYear:  intPtr(2024),
		PeriodMonth: intPtr(1),
		BaseSalary:  dec("10000000000"),
		Status:      statusPtr(StatusDraft),
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_salary:")
}

func TestCheckNet(t *testing.T) {
	record := storedRecord()
	record.BaseSalary = MaxAmount
	record.BonusAmount = MaxAmount
	record.NetAmount = decimal.NewNullDecimal(AmountsOf(record).Net())

	err := CheckNet(record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "net_amount:")

	assert.NoError(t, CheckNet(storedRecord()))
}

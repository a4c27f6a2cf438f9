package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
// Reads return records with employee and hr_worker summaries joined.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id int64) (PayrollRecord, error)
	List(ctx context.Context, filter Filter) ([]PayrollRecord, error)
	Update(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	PeriodTaken(ctx context.Context, employeeID int64, year, month int, exceptID int64) (bool, error)
}

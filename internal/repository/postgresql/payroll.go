package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollSelect = `
	SELECT pr.id, pr.employee_id, pr.hr_worker_id, pr.period_year, pr.period_month,
		pr.base_salary, pr.bonus_amount, pr.overtime_amount, pr.benefits_amount, pr.deductions_amount,
		pr.net_amount, pr.status, pr.created_at, pr.updated_at,
		e.name, e.email, h.name, h.email
	FROM payroll_records pr
	JOIN users e ON e.id = pr.employee_id
	JOIN users h ON h.id = pr.hr_worker_id
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var (
		p                           payroll.PayrollRecord
		employeeName, employeeEmail string
		hrName, hrEmail             string
	)
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.HRWorkerID,
		&p.PeriodYear,
		&p.PeriodMonth,
		&p.BaseSalary,
		&p.BonusAmount,
		&p.OvertimeAmount,
		&p.BenefitsAmount,
		&p.DeductionsAmount,
		&p.NetAmount,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&employeeName,
		&employeeEmail,
		&hrName,
		&hrEmail,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	p.Employee = &user.Summary{ID: p.EmployeeID, Name: employeeName, Email: employeeEmail}
	p.HRWorker = &user.Summary{ID: p.HRWorkerID, Name: hrName, Email: hrEmail}
	return p, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, hr_worker_id, period_year, period_month,
			base_salary, bonus_amount, overtime_amount, benefits_amount, deductions_amount,
			net_amount, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.HRWorkerID,
		record.PeriodYear,
		record.PeriodMonth,
		record.BaseSalary,
		record.BonusAmount,
		record.OvertimeAmount,
		record.BenefitsAmount,
		record.DeductionsAmount,
		record.NetAmount,
		record.Status,
	).Scan(&id)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	result, err := scanPayrollRecord(q.QueryRow(ctx, payrollSelect+` WHERE pr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return result, nil
}

// List implements payroll.PayrollRepository. Newest periods come first.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", len(args)))
	}
	if filter.PeriodYear != nil {
		args = append(args, *filter.PeriodYear)
		conditions = append(conditions, fmt.Sprintf("pr.period_year = $%d", len(args)))
	}
	if filter.PeriodMonth != nil {
		args = append(args, *filter.PeriodMonth)
		conditions = append(conditions, fmt.Sprintf("pr.period_month = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("pr.status = $%d", len(args)))
	}

	query := payrollSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pr.period_year DESC, pr.period_month DESC, pr.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll records: %w", err)
	}
	defer rows.Close()

	records := []payroll.PayrollRecord{}
	for rows.Next() {
		p, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET employee_id = $1, hr_worker_id = $2, period_year = $3, period_month = $4,
			base_salary = $5, bonus_amount = $6, overtime_amount = $7, benefits_amount = $8,
			deductions_amount = $9, net_amount = $10, status = $11, updated_at = NOW()
		WHERE id = $12
	`

	commandTag, err := q.Exec(ctx, query,
		record.EmployeeID,
		record.HRWorkerID,
		record.PeriodYear,
		record.PeriodMonth,
		record.BaseSalary,
		record.BonusAmount,
		record.OvertimeAmount,
		record.BenefitsAmount,
		record.DeductionsAmount,
		record.NetAmount,
		record.Status,
		record.ID,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}

	return r.GetByID(ctx, record.ID)
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// Exists implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payroll_records WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll record: %w", err)
	}
	return exists, nil
}

// PeriodTaken implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) PeriodTaken(ctx context.Context, employeeID int64, year, month int, exceptID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1 AND period_year = $2 AND period_month = $3 AND id <> $4
		)
	`

	var taken bool
	if err := q.QueryRow(ctx, query, employeeID, year, month, exceptID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}
	return taken, nil
}

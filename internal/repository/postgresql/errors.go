package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique_violation, optionally on a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	return hasCode(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign_key_violation, optionally on a named constraint.
func IsForeignKeyViolation(err error, constraint string) bool {
	return hasCode(err, codeForeignKeyViolation, constraint)
}

func hasCode(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// Constraint names from the embedded migrations.
const (
	ConstraintDepartmentName      = "departments_name_unique"
	ConstraintPositionName        = "positions_department_name_unique"
	ConstraintUserEmail           = "users_email_unique"
	ConstraintPayrollPeriod       = "payroll_records_employee_period_unique"
	ConstraintPositionDepartment  = "positions_department_id_fkey"
	ConstraintUserPosition        = "users_position_id_fkey"
	ConstraintPayrollEmployee     = "payroll_records_employee_id_fkey"
	ConstraintPayrollHRWorker     = "payroll_records_hr_worker_id_fkey"
	ConstraintReviewEmployee      = "performance_reviews_employee_id_fkey"
	ConstraintReviewHRWorker      = "performance_reviews_hr_worker_id_fkey"
	ConstraintReviewPayrollRecord = "performance_reviews_payroll_record_id_fkey"
)

package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrPayrollRecordInUse         = errors.New("payroll record is referenced by performance reviews")
	ErrPayrollRecordAccessDenied  = errors.New("payroll record belongs to another employee")
)

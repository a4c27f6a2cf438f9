package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrUserInUse               = errors.New("user is referenced by payroll records or performance reviews")
	ErrProtectedFieldsOnSelf   = errors.New("role, status and position can only be changed by admin or hr_worker")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

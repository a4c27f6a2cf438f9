package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fasthr/hr-backend-go/internal/domain/auth"
	"github.com/fasthr/hr-backend-go/internal/domain/master/department"
	"github.com/fasthr/hr-backend-go/internal/domain/master/position"
	"github.com/fasthr/hr-backend-go/internal/domain/payroll"
	"github.com/fasthr/hr-backend-go/internal/domain/review"
	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, "Invalid credentials.", map[string][]string{
			"auth": {"Email or password is incorrect."},
		})
	case errors.Is(err, auth.ErrAccountInactive):
		Fail(w, http.StatusForbidden, "Account is not active.", map[string][]string{
			"auth": {"Contact the administrator."},
		})
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionRevoked),
		errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Unauthenticated.")
	case errors.Is(err, auth.ErrTooManyAttempts):
		TooManyRequests(w, "Too many login attempts. Please try again later.")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found.")
	case errors.Is(err, user.ErrUserEmailExists):
		ValidationError(w, validator.Taken("email").ToMap())
	case errors.Is(err, user.ErrUserInUse):
		Conflict(w, "User is referenced by payroll records or performance reviews.")
	case errors.Is(err, user.ErrProtectedFieldsOnSelf):
		Forbidden(w, "Only admin or hr_worker can change role, status or position.")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "This action is unauthorized.")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found.")
	case errors.Is(err, department.ErrDepartmentNameExists):
		ValidationError(w, validator.Taken("name").ToMap())
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has positions.")

	// Position domain errors
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found.")
	case errors.Is(err, position.ErrPositionNameExists):
		ValidationError(w, validator.Field("name", "The name has already been taken in this department.").ToMap())
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position is still referenced.")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found.")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		ValidationError(w, validator.Field("period_month", "A payroll record already exists for this employee and period.").ToMap())
	case errors.Is(err, payroll.ErrPayrollRecordInUse):
		Conflict(w, "Payroll record is referenced by performance reviews.")
	case errors.Is(err, payroll.ErrPayrollRecordAccessDenied):
		Forbidden(w, "This action is unauthorized.")

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found.")
	case errors.Is(err, review.ErrReviewAccessDenied):
		Forbidden(w, "This action is unauthorized.")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred.")
	}
}

package response

import (
	"errors"
	"net/http"

	"github.com/stafflane/hrms-backend-go/internal/domain/attendance"
	"github.com/stafflane/hrms-backend-go/internal/domain/auth"
	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/leave"
	"github.com/stafflane/hrms-backend-go/internal/domain/payroll"
	"github.com/stafflane/hrms-backend-go/internal/domain/performance"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
	"github.com/stafflane/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserDeactivated):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrManagerRoleRequired):
		Forbidden(w, err.Error())

	// Scope errors
	case errors.Is(err, scope.ErrMissingClaims),
		errors.Is(err, scope.ErrMissingEmployeeID):
		Unauthorized(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrOutOfScope):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidRecordType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrApproverRoleRequired),
		errors.Is(err, leave.ErrOutOfScope):
		Forbidden(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrPayslipForbidden):
		Forbidden(w, err.Error())

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrInvalidRating):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, performance.ErrReviewerRoleRequired),
		errors.Is(err, performance.ErrNotReviewOwner),
		errors.Is(err, performance.ErrOutOfScope):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

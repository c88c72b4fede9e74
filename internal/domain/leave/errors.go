package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInvalidLeaveType      = errors.New("invalid leave type")
	ErrInvalidDateRange      = errors.New("start_date must not be after end_date")
	ErrApproverRoleRequired  = errors.New("only hr or manager may process leave requests")
	ErrOutOfScope            = errors.New("leave request is outside the caller's visibility")
)

package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNotCheckedIn       = errors.New("no open check-in found for today")
	ErrAlreadyCheckedOut  = errors.New("already checked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
	ErrInvalidRecordType  = errors.New("record type must be check_in or check_out")
)

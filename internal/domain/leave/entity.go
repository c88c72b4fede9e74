package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Type string

const (
	TypeAnnual Type = "annual"
	TypeSick   Type = "sick"
	TypeCasual Type = "casual"
	TypeUnpaid Type = "unpaid"
)

var ValidTypes = []string{string(TypeAnnual), string(TypeSick), string(TypeCasual), string(TypeUnpaid)}

// LeaveRequest moves pending -> approved | rejected, both terminal. The
// processing caller is recorded in ApprovedBy for either outcome.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	Comments   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	Department   *string
}

// Processed reports whether the request has reached a terminal status.
func (r *LeaveRequest) Processed() bool {
	return r.Status != StatusPending
}

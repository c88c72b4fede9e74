package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent    Status = "present"     // checked in, not yet out
	StatusCheckedOut Status = "checked_out" // terminal for the day
	StatusAbsent     Status = "absent"      // backfilled rows only, never created by check-in
)

// Attendance is one employee-day row. The (EmployeeID, Date) pair is unique;
// the row is created at check-in and mutated exactly once at check-out.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	TotalHours *float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	EmployeeName *string
	Department   *string
}

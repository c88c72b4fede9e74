package attendance

import (
	"context"
	"time"

	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

// AttendanceRepository defines data access for attendance rows. Create relies
// on the UNIQUE(employee_id, date) constraint: a duplicate insert surfaces as
// ErrAlreadyCheckedIn instead of a read-then-write check.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	CloseSession(ctx context.Context, id string, checkOut time.Time, totalHours float64) (Attendance, error)
	List(ctx context.Context, sc scope.Scope, filter ListFilter) ([]Attendance, int64, error)
	Summarize(ctx context.Context, employeeID string) (Summary, error)
}

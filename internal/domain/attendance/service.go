package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance ledger.
type AttendanceService interface {
	// Record processes a check_in or check_out for the authenticated employee.
	Record(ctx context.Context, req RecordRequest) (AttendanceResponse, error)

	// List retrieves attendance rows visible under the caller's scope.
	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// Summary aggregates the full history for one employee. An empty
	// employeeID targets the caller's own row.
	Summary(ctx context.Context, employeeID string) (Summary, error)
}

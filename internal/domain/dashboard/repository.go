package dashboard

import (
	"context"
	"time"

	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

// DashboardRepository exposes the independent aggregate queries the stats
// endpoints fan out over.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountEmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error)
	CountEmployeesInDepartment(ctx context.Context, department string) (int64, error)
	CountPendingLeave(ctx context.Context, department *string) (int64, error)
	CountPayrollForMonth(ctx context.Context, month string) (int64, error)
	CountReviewsSince(ctx context.Context, department string, since time.Time) (int64, error)
	MonthAttendanceForEmployee(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (MonthAttendance, error)
	CountApprovedLeaveSince(ctx context.Context, employeeID string, since time.Time) (int64, error)
	AvgRatingSince(ctx context.Context, employeeID string, since time.Time) (float64, error)
	RecentActivities(ctx context.Context, sc scope.Scope, limit int) ([]Activity, error)
}

package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/hrms-backend-go/internal/domain/dashboard"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

func scopedCtx(t *testing.T, role, employeeID, department string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id": "user-1",
		"email":   "test@example.com",
		"role":    role,
		"type":    "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	if department != "" {
		claims["department"] = department
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeDashboardRepo struct {
	totalEmployees int64
	deptCounts     []dashboard.DepartmentCount
	pendingAll     int64
	pendingByDept  map[string]int64
	payrollCount   int64
	reviewCount    int64
	attendance     dashboard.MonthAttendance
	approvedLeave  int64
	avgRating      float64
	activities     []dashboard.Activity
}

func (f *fakeDashboardRepo) CountEmployees(ctx context.Context) (int64, error) {
	return f.totalEmployees, nil
}

func (f *fakeDashboardRepo) CountEmployeesByDepartment(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	return f.deptCounts, nil
}

func (f *fakeDashboardRepo) CountEmployeesInDepartment(ctx context.Context, department string) (int64, error) {
	for _, dc := range f.deptCounts {
		if dc.Department == department {
			return dc.Count, nil
		}
	}
	return 0, nil
}

func (f *fakeDashboardRepo) CountPendingLeave(ctx context.Context, department *string) (int64, error) {
	if department == nil {
		return f.pendingAll, nil
	}
	return f.pendingByDept[*department], nil
}

func (f *fakeDashboardRepo) CountPayrollForMonth(ctx context.Context, month string) (int64, error) {
	return f.payrollCount, nil
}

func (f *fakeDashboardRepo) CountReviewsSince(ctx context.Context, department string, since time.Time) (int64, error) {
	return f.reviewCount, nil
}

func (f *fakeDashboardRepo) MonthAttendanceForEmployee(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (dashboard.MonthAttendance, error) {
	return f.attendance, nil
}

func (f *fakeDashboardRepo) CountApprovedLeaveSince(ctx context.Context, employeeID string, since time.Time) (int64, error) {
	return f.approvedLeave, nil
}

func (f *fakeDashboardRepo) AvgRatingSince(ctx context.Context, employeeID string, since time.Time) (float64, error) {
	return f.avgRating, nil
}

func (f *fakeDashboardRepo) RecentActivities(ctx context.Context, sc scope.Scope, limit int) ([]dashboard.Activity, error) {
	return f.activities, nil
}

func TestHRStatsAggregates(t *testing.T) {
	repo := &fakeDashboardRepo{
		totalEmployees: 42,
		deptCounts: []dashboard.DepartmentCount{
			{Department: "Engineering", Count: 30},
			{Department: "Sales", Count: 12},
		},
		pendingAll:   5,
		payrollCount: 40,
	}
	svc := NewDashboardService(repo)

	resp, err := svc.HRStats(scopedCtx(t, "hr", "emp-hr", "People"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.TotalEmployees)
	assert.Len(t, resp.DepartmentCounts, 2)
	assert.Equal(t, int64(5), resp.PendingLeaveCount)
	assert.Equal(t, int64(40), resp.PayrollCountMonth)
}

func TestHRStatsRejectsOtherRoles(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{})

	_, err := svc.HRStats(scopedCtx(t, "manager", "emp-mgr", "Engineering"))
	assert.ErrorIs(t, err, user.ErrHRAccessRequired)

	_, err = svc.HRStats(scopedCtx(t, "employee", "emp-1", "Engineering"))
	assert.ErrorIs(t, err, user.ErrHRAccessRequired)
}

func TestManagerStatsUsesOwnDepartment(t *testing.T) {
	repo := &fakeDashboardRepo{
		deptCounts:    []dashboard.DepartmentCount{{Department: "Engineering", Count: 8}},
		pendingByDept: map[string]int64{"Engineering": 3},
		reviewCount:   2,
	}
	svc := NewDashboardService(repo)

	resp, err := svc.ManagerStats(scopedCtx(t, "manager", "emp-mgr", "Engineering"))
	require.NoError(t, err)
	assert.Equal(t, "Engineering", resp.Department)
	assert.Equal(t, int64(8), resp.TeamSize)
	assert.Equal(t, int64(3), resp.PendingLeaveCount)
	assert.Equal(t, int64(2), resp.ReviewsThisMonth)
}

func TestManagerStatsRejectsOtherRoles(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{})

	// hr has no department claim; it gets its own stats endpoint instead.
	_, err := svc.ManagerStats(scopedCtx(t, "hr", "emp-hr", ""))
	assert.ErrorIs(t, err, user.ErrManagerRoleRequired)

	_, err = svc.ManagerStats(scopedCtx(t, "employee", "emp-1", "Engineering"))
	assert.ErrorIs(t, err, user.ErrManagerRoleRequired)
}

func TestEmployeeStats(t *testing.T) {
	repo := &fakeDashboardRepo{
		attendance:    dashboard.MonthAttendance{Total: 20, Present: 18},
		approvedLeave: 4,
		avgRating:     3.75,
	}
	svc := NewDashboardService(repo)

	resp, err := svc.EmployeeStats(scopedCtx(t, "employee", "emp-1", "Engineering"))
	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.Attendance.Total)
	assert.Equal(t, int64(18), resp.Attendance.Present)
	assert.Equal(t, int64(4), resp.ApprovedLeaveYear)
	assert.InDelta(t, 3.75, resp.AvgRatingYear, 0.001)
}

func TestActivitiesNeverNil(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{})

	resp, err := svc.Activities(scopedCtx(t, "employee", "emp-1", "Engineering"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Activities)
	assert.Empty(t, resp.Activities)
}

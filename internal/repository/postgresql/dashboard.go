package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafflane/hrms-backend-go/internal/domain/dashboard"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `
		SELECT COUNT(*)
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE u.is_active = TRUE
	`
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountEmployeesByDepartment(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.department, COUNT(*)
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE u.is_active = TRUE
		GROUP BY e.department
		ORDER BY e.department
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DepartmentCount
	for rows.Next() {
		var dc dashboard.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *dashboardRepository) CountEmployeesInDepartment(ctx context.Context, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `
		SELECT COUNT(*)
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE u.is_active = TRUE AND e.department = $1
	`
	if err := q.QueryRow(ctx, query, department).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count department employees: %w", err)
	}
	return count, nil
}

// CountPendingLeave counts pending requests company-wide, or within one
// department when department is non-nil.
func (r *dashboardRepository) CountPendingLeave(ctx context.Context, department *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'pending'
	`
	args := []interface{}{}
	if department != nil {
		query += " AND e.department = $1"
		args = append(args, *department)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountPayrollForMonth(ctx context.Context, month string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM payrolls WHERE payroll_month = $1`
	if err := q.QueryRow(ctx, query, month).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payroll records: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) CountReviewsSince(ctx context.Context, department string, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `
		SELECT COUNT(*)
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		WHERE e.department = $1 AND r.review_date >= $2
	`
	if err := q.QueryRow(ctx, query, department, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) MonthAttendanceForEmployee(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (dashboard.MonthAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status IN ('present', 'checked_out') THEN 1 ELSE 0 END), 0)
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	var ma dashboard.MonthAttendance
	if err := q.QueryRow(ctx, query, employeeID, monthStart, monthEnd).Scan(&ma.Total, &ma.Present); err != nil {
		return dashboard.MonthAttendance{}, fmt.Errorf("failed to summarize month attendance: %w", err)
	}
	return ma, nil
}

func (r *dashboardRepository) CountApprovedLeaveSince(ctx context.Context, employeeID string, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE employee_id = $1 AND status = 'approved' AND start_date >= $2
	`
	if err := q.QueryRow(ctx, query, employeeID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count approved leave: %w", err)
	}
	return count, nil
}

func (r *dashboardRepository) AvgRatingSince(ctx context.Context, employeeID string, since time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var avg float64
	query := `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0)
		FROM performance_reviews
		WHERE employee_id = $1 AND review_date >= $2
	`
	if err := q.QueryRow(ctx, query, employeeID, since).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average rating: %w", err)
	}
	return avg, nil
}

// RecentActivities merges check-ins, leave requests and reviews into one
// scoped feed, newest first. Each branch of the UNION carries the same scope
// filter so a manager only sees their department and an employee only
// themselves.
func (r *dashboardRepository) RecentActivities(ctx context.Context, sc scope.Scope, limit int) ([]dashboard.Activity, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{}
	argIdx := 1

	scopeWhere := func(col string) string {
		clause, scopeArgs := sc.SQLFilter(col, argIdx)
		if clause == "" {
			return ""
		}
		args = append(args, scopeArgs...)
		argIdx += len(scopeArgs)
		return " AND " + clause
	}

	attWhere := scopeWhere("a.employee_id")
	leaveWhere := scopeWhere("l.employee_id")
	reviewWhere := scopeWhere("r.employee_id")

	query := fmt.Sprintf(`
		SELECT kind, employee_name, detail, occurred_at FROM (
			SELECT 'check_in' AS kind,
			       e.first_name || ' ' || e.last_name AS employee_name,
			       'checked in' AS detail,
			       a.check_in AS occurred_at
			FROM attendances a
			JOIN employees e ON e.id = a.employee_id
			WHERE 1=1%s
			UNION ALL
			SELECT 'leave_request',
			       e.first_name || ' ' || e.last_name,
			       'requested ' || l.leave_type || ' leave',
			       l.created_at
			FROM leave_requests l
			JOIN employees e ON e.id = l.employee_id
			WHERE 1=1%s
			UNION ALL
			SELECT 'review',
			       e.first_name || ' ' || e.last_name,
			       'received a performance review',
			       r.created_at
			FROM performance_reviews r
			JOIN employees e ON e.id = r.employee_id
			WHERE 1=1%s
		) feed
		ORDER BY occurred_at DESC
		LIMIT $%d
	`, attWhere, leaveWhere, reviewWhere, argIdx)
	args = append(args, limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activities: %w", err)
	}
	defer rows.Close()

	var activities []dashboard.Activity
	for rows.Next() {
		var (
			act        dashboard.Activity
			occurredAt time.Time
		)
		if err := rows.Scan(&act.Kind, &act.EmployeeName, &act.Detail, &occurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		act.OccurredAt = occurredAt.Format(time.RFC3339)
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

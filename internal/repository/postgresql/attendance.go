package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafflane/hrms-backend-go/internal/domain/attendance"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The attendances table
// has UNIQUE(employee_id, date); a second check-in on the same day fails the
// insert and surfaces as ErrAlreadyCheckedIn, which removes the
// check-then-act race entirely.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.Status,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, total_hours, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		  AND check_out IS NULL
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return att, nil
}

// CloseSession implements attendance.AttendanceRepository. The check_out IS
// NULL guard makes the mutation one-shot.
func (r *attendanceRepository) CloseSession(ctx context.Context, id string, checkOut time.Time, totalHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $1, total_hours = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND check_out IS NULL
		RETURNING id, employee_id, date, check_in, check_out, total_hours, status, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, checkOut, totalHours, attendance.StatusCheckedOut, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, sc scope.Scope, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if clause, scopeArgs := sc.SQLFilter("a.employee_id", argIdx); clause != "" {
		baseWhere += " AND " + clause
		args = append(args, scopeArgs...)
		argIdx += len(scopeArgs)
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	listQuery := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.total_hours, a.status,
		       a.created_at, a.updated_at,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       e.department
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere + fmt.Sprintf(`
		ORDER BY a.date DESC, a.check_in DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.Department,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Summarize implements attendance.AttendanceRepository. The summary spans the
// employee's full history; only the list path supports date ranges.
func (r *attendanceRepository) Summarize(ctx context.Context, employeeID string) (attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total_days,
			COALESCE(SUM(CASE WHEN status IN ('present', 'checked_out') THEN 1 ELSE 0 END), 0) AS present_days,
			COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0) AS absent_days,
			COALESCE(ROUND(AVG(total_hours)::numeric, 2), 0) AS avg_hours
		FROM attendances
		WHERE employee_id = $1
	`

	var s attendance.Summary
	err := q.QueryRow(ctx, query, employeeID).Scan(&s.TotalDays, &s.PresentDays, &s.AbsentDays, &s.AvgHours)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return s, nil
}

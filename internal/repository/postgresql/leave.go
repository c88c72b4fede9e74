package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafflane/hrms-backend-go/internal/domain/leave"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
)

const leaveColumns = `l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
	l.status, l.approved_by, l.comments, l.created_at, l.updated_at`

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRepository{db: db}
}

func scanLeave(row pgx.Row, withEmployee bool) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	dest := []interface{}{
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Reason,
		&req.Status, &req.ApprovedBy, &req.Comments, &req.CreatedAt, &req.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &req.EmployeeName, &req.Department)
	}
	if err := row.Scan(dest...); err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		leave.StatusPending,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	req.Status = leave.StatusPending
	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeave(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRepository) List(ctx context.Context, sc scope.Scope, filter leave.ListFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if clause, scopeArgs := sc.SQLFilter("l.employee_id", argIdx); clause != "" {
		baseWhere += " AND " + clause
		args = append(args, scopeArgs...)
		argIdx += len(scopeArgs)
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		baseWhere += fmt.Sprintf(" AND l.leave_type = $%d", argIdx)
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	listQuery := `
		SELECT ` + leaveColumns + `,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       e.department
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + baseWhere + fmt.Sprintf(`
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository. The status='pending'
// guard in the UPDATE makes the transition one-shot: a request that was
// already processed matches no row, and the follow-up existence check decides
// between not-found and already-processed.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string, comments *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, comments = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
		RETURNING id, employee_id, leave_type, start_date, end_date, reason,
		          status, approved_by, comments, created_at, updated_at
	`

	req, err := scanLeave(q.QueryRow(ctx, query, status, approvedBy, comments, id), false)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	// Guard matched nothing: distinguish missing from already processed.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`
	if checkErr := q.QueryRow(ctx, checkQuery, id).Scan(&exists); checkErr != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check leave request: %w", checkErr)
	}
	if !exists {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
}

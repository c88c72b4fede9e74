package leave

import (
	"context"

	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, sc scope.Scope, filter ListFilter) ([]LeaveRequest, int64, error)

	// UpdateStatus transitions a pending request to approved or rejected.
	// The UPDATE carries a status='pending' guard so a request that has
	// already been processed is never overwritten; implementations return
	// ErrLeaveAlreadyProcessed when the guard matches no row.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string, comments *string) (LeaveRequest, error)
}

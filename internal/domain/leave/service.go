package leave

import (
	"context"
)

type LeaveService interface {
	// Create submits a new pending request for the authenticated employee.
	Create(ctx context.Context, req CreateRequest) (LeaveResponse, error)

	// List retrieves requests visible under the caller's scope.
	List(ctx context.Context, filter ListFilter) (ListLeaveResponse, error)

	// UpdateStatus approves or rejects a pending request. hr/manager only;
	// managers are limited to their own department.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveResponse, error)
}

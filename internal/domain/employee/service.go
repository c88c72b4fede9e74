package employee

import (
	"context"
)

// EmployeeService defines the directory operations. List and Get are
// scope-filtered; Update and Deactivate are hr-only (enforced at the router).
type EmployeeService interface {
	List(ctx context.Context, filter ListFilter) (ListEmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

package employee

import (
	"context"

	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, sc scope.Scope, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	NextEmployeeCode(ctx context.Context) (string, error)
}

package performance

import (
	"context"

	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

type PerformanceRepository interface {
	Create(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	List(ctx context.Context, sc scope.Scope, filter ListFilter) ([]PerformanceReview, int64, error)
	Update(ctx context.Context, req UpdateRequest) (PerformanceReview, error)
}

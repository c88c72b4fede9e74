package performance

import (
	"context"
)

type PerformanceService interface {
	// Create writes a review; hr/manager only, managers within their own
	// department.
	Create(ctx context.Context, req CreateRequest) (ReviewResponse, error)

	// List retrieves reviews visible under the caller's scope.
	List(ctx context.Context, filter ListFilter) (ListReviewResponse, error)

	// Get retrieves a single review if the caller's scope allows it.
	Get(ctx context.Context, id string) (ReviewResponse, error)

	// Update mutates a review; the original reviewer or hr only.
	Update(ctx context.Context, req UpdateRequest) (ReviewResponse, error)
}

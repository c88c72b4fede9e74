package performance

import (
	"context"
	"time"

	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/performance"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

type PerformanceServiceImpl struct {
	performance.PerformanceRepository
	employee.EmployeeRepository
}

func NewPerformanceService(performanceRepository performance.PerformanceRepository, employeeRepository employee.EmployeeRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		PerformanceRepository: performanceRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// Create implements performance.PerformanceService. Managers review their
// own department only; hr reviews anyone.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreateRequest) (performance.ReviewResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if !sc.CanApprove() {
		return performance.ReviewResponse{}, performance.ErrReviewerRoleRequired
	}
	if sc.EmployeeID == "" {
		return performance.ReviewResponse{}, scope.ErrMissingEmployeeID
	}

	target, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if sc.Role == user.RoleManager && target.Department != sc.Department {
		return performance.ReviewResponse{}, performance.ErrOutOfScope
	}

	reviewDate := time.Now().UTC()
	if req.ReviewDate != "" {
		reviewDate, err = time.Parse("2006-01-02", req.ReviewDate)
		if err != nil {
			return performance.ReviewResponse{}, err
		}
	}

	created, err := s.PerformanceRepository.Create(ctx, performance.PerformanceReview{
		EmployeeID:          req.EmployeeID,
		ReviewerID:          sc.EmployeeID,
		ReviewDate:          reviewDate,
		Rating:              req.Rating,
		Comments:            req.Comments,
		Goals:               req.Goals,
		Achievements:        req.Achievements,
		AreasForImprovement: req.AreasForImprovement,
		Status:              performance.StatusDraft,
	})
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	name := target.FullName()
	created.EmployeeName = &name
	return performance.ToResponse(created), nil
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context, filter performance.ListFilter) (performance.ListReviewResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return performance.ListReviewResponse{}, err
	}
	filter.Normalize()

	reviews, total, err := s.PerformanceRepository.List(ctx, sc, filter)
	if err != nil {
		return performance.ListReviewResponse{}, err
	}

	resp := performance.ListReviewResponse{
		Reviews: make([]performance.ReviewResponse, 0, len(reviews)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for _, rev := range reviews {
		resp.Reviews = append(resp.Reviews, performance.ToResponse(rev))
	}
	return resp, nil
}

// Get implements performance.PerformanceService. Out-of-scope reviews read
// as not found.
func (s *PerformanceServiceImpl) Get(ctx context.Context, id string) (performance.ReviewResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	rev, err := s.PerformanceRepository.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	dept := ""
	if rev.Department != nil {
		dept = *rev.Department
	}
	if !sc.AllowsEmployee(rev.EmployeeID, dept) {
		return performance.ReviewResponse{}, performance.ErrReviewNotFound
	}

	return performance.ToResponse(rev), nil
}

// Update implements performance.PerformanceService. Only the original
// reviewer or hr may edit a review.
func (s *PerformanceServiceImpl) Update(ctx context.Context, req performance.UpdateRequest) (performance.ReviewResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	existing, err := s.PerformanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if sc.Role != user.RoleHR && existing.ReviewerID != sc.EmployeeID {
		return performance.ReviewResponse{}, performance.ErrNotReviewOwner
	}

	updated, err := s.PerformanceRepository.Update(ctx, req)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	updated.EmployeeName = existing.EmployeeName
	updated.ReviewerName = existing.ReviewerName
	return performance.ToResponse(updated), nil
}

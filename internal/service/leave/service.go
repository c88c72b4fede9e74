package leave

import (
	"context"
	"time"

	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/leave"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		EmployeeRepository:     employeeRepository,
	}
}

// Create implements leave.LeaveService. Requests are always filed for the
// caller's own employee row.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.LeaveResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if sc.EmployeeID == "" {
		return leave.LeaveResponse{}, scope.ErrMissingEmployeeID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}
	if startDate.After(endDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: sc.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) (leave.ListLeaveResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, sc, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		Requests: make([]leave.LeaveResponse, 0, len(requests)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, req := range requests {
		resp.Requests = append(resp.Requests, leave.ToResponse(req))
	}
	return resp, nil
}

// UpdateStatus implements leave.LeaveService. The caller must be hr or a
// manager; a manager may only process requests from their own department.
// The pending-only guard lives in the repository UPDATE, so a concurrent
// double-approval loses cleanly.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !sc.CanApprove() {
		return leave.LeaveResponse{}, leave.ErrApproverRoleRequired
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	dept := ""
	if existing.Department != nil {
		dept = *existing.Department
	}
	if !sc.AllowsEmployee(existing.EmployeeID, dept) {
		return leave.LeaveResponse{}, leave.ErrOutOfScope
	}

	var approvedBy *string
	if sc.EmployeeID != "" {
		approvedBy = &sc.EmployeeID
	}

	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.Status(req.Status), approvedBy, req.Comments)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated.EmployeeName = existing.EmployeeName
	return leave.ToResponse(updated), nil
}

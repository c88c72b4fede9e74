package employee

import (
	"context"

	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeeResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	filter.Normalize()

	employees, total, err := s.EmployeeRepository.List(ctx, sc, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
		Total:     total,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(e))
	}
	return resp, nil
}

// Get implements employee.EmployeeService. A row outside the caller's scope
// reads as not found rather than forbidden, so the directory does not leak
// which ids exist.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !sc.AllowsEmployee(emp.ID, emp.Department) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.ManagerID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if err == employee.ErrEmployeeNotFound {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService. The user row is flipped
// inactive; the employee row and its history stay intact.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.UserRepository.SetActive(ctx, emp.UserID, false)
}

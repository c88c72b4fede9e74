package attendance

import (
	"context"
	"time"

	"github.com/stafflane/hrms-backend-go/internal/domain/attendance"
	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		now:                  time.Now,
	}
}

// Record implements attendance.AttendanceService. Check-in inserts a fresh
// row and lets the UNIQUE(employee_id, date) constraint reject a second
// check-in for the same day; check-out closes today's open session.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordRequest) (attendance.AttendanceResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if sc.EmployeeID == "" {
		return attendance.AttendanceResponse{}, scope.ErrMissingEmployeeID
	}

	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	switch req.Type {
	case attendance.RecordTypeCheckIn:
		att, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: sc.EmployeeID,
			Date:       today,
			CheckIn:    now,
			Status:     attendance.StatusPresent,
		})
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToResponse(att), nil

	case attendance.RecordTypeCheckOut:
		open, err := s.AttendanceRepository.GetOpenByEmployeeAndDate(ctx, sc.EmployeeID, today)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		hours := attendance.WorkedHours(open.CheckIn, now)
		closed, err := s.AttendanceRepository.CloseSession(ctx, open.ID, now, hours)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.ToResponse(closed), nil

	default:
		return attendance.AttendanceResponse{}, attendance.ErrInvalidRecordType
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.List(ctx, sc, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for _, att := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(att))
	}
	return resp, nil
}

// Summary implements attendance.AttendanceService. The target defaults to
// the caller; any other target must sit inside the caller's scope.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string) (attendance.Summary, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return attendance.Summary{}, err
	}

	if employeeID == "" {
		if sc.EmployeeID == "" {
			return attendance.Summary{}, scope.ErrMissingEmployeeID
		}
		employeeID = sc.EmployeeID
	}

	if employeeID != sc.EmployeeID && sc.Role != user.RoleHR {
		target, err := s.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return attendance.Summary{}, err
		}
		if !sc.AllowsEmployee(target.ID, target.Department) {
			return attendance.Summary{}, attendance.ErrUnauthorized
		}
	}

	return s.AttendanceRepository.Summarize(ctx, employeeID)
}

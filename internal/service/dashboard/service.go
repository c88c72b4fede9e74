package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stafflane/hrms-backend-go/internal/domain/dashboard"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

const activityFeedLimit = 20

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// HRStats implements dashboard.DashboardService. The four statistics are
// independent queries issued in parallel; the first failure cancels the rest.
func (s *DashboardServiceImpl) HRStats(ctx context.Context) (dashboard.HRStatsResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return dashboard.HRStatsResponse{}, err
	}
	if sc.Role != user.RoleHR {
		return dashboard.HRStatsResponse{}, user.ErrHRAccessRequired
	}

	month := time.Now().UTC().Format("2006-01")

	var resp dashboard.HRStatsResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		resp.TotalEmployees = total
		return nil
	})
	g.Go(func() error {
		counts, err := s.CountEmployeesByDepartment(gCtx)
		if err != nil {
			return err
		}
		resp.DepartmentCounts = counts
		return nil
	})
	g.Go(func() error {
		pending, err := s.CountPendingLeave(gCtx, nil)
		if err != nil {
			return err
		}
		resp.PendingLeaveCount = pending
		return nil
	})
	g.Go(func() error {
		count, err := s.CountPayrollForMonth(gCtx, month)
		if err != nil {
			return err
		}
		resp.PayrollCountMonth = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.HRStatsResponse{}, err
	}
	return resp, nil
}

// ManagerStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ManagerStats(ctx context.Context) (dashboard.ManagerStatsResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return dashboard.ManagerStatsResponse{}, err
	}
	if sc.Role != user.RoleManager {
		return dashboard.ManagerStatsResponse{}, user.ErrManagerRoleRequired
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	department := sc.Department

	resp := dashboard.ManagerStatsResponse{Department: department}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		size, err := s.CountEmployeesInDepartment(gCtx, department)
		if err != nil {
			return err
		}
		resp.TeamSize = size
		return nil
	})
	g.Go(func() error {
		pending, err := s.CountPendingLeave(gCtx, &department)
		if err != nil {
			return err
		}
		resp.PendingLeaveCount = pending
		return nil
	})
	g.Go(func() error {
		count, err := s.CountReviewsSince(gCtx, department, monthStart)
		if err != nil {
			return err
		}
		resp.ReviewsThisMonth = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.ManagerStatsResponse{}, err
	}
	return resp, nil
}

// EmployeeStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeStats(ctx context.Context) (dashboard.EmployeeStatsResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return dashboard.EmployeeStatsResponse{}, err
	}
	if sc.EmployeeID == "" {
		return dashboard.EmployeeStatsResponse{}, scope.ErrMissingEmployeeID
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	employeeID := sc.EmployeeID

	var resp dashboard.EmployeeStatsResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ma, err := s.MonthAttendanceForEmployee(gCtx, employeeID, monthStart, monthEnd)
		if err != nil {
			return err
		}
		resp.Attendance = ma
		return nil
	})
	g.Go(func() error {
		count, err := s.CountApprovedLeaveSince(gCtx, employeeID, yearStart)
		if err != nil {
			return err
		}
		resp.ApprovedLeaveYear = count
		return nil
	})
	g.Go(func() error {
		avg, err := s.AvgRatingSince(gCtx, employeeID, yearStart)
		if err != nil {
			return err
		}
		resp.AvgRatingYear = avg
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeStatsResponse{}, err
	}
	return resp, nil
}

// Activities implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Activities(ctx context.Context) (dashboard.ActivitiesResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return dashboard.ActivitiesResponse{}, err
	}

	activities, err := s.RecentActivities(ctx, sc, activityFeedLimit)
	if err != nil {
		return dashboard.ActivitiesResponse{}, err
	}
	if activities == nil {
		activities = []dashboard.Activity{}
	}

	return dashboard.ActivitiesResponse{Activities: activities}, nil
}

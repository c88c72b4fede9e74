package dashboard

import (
	"context"
)

// DashboardService computes per-role rollups. Every statistic is an
// independent query; the queries for one response are issued concurrently and
// any failure aborts the whole response.
type DashboardService interface {
	HRStats(ctx context.Context) (HRStatsResponse, error)
	ManagerStats(ctx context.Context) (ManagerStatsResponse, error)
	EmployeeStats(ctx context.Context) (EmployeeStatsResponse, error)
	Activities(ctx context.Context) (ActivitiesResponse, error)
}

package http

import (
	"net/http"

	"github.com/stafflane/hrms-backend-go/internal/domain/dashboard"
	"github.com/stafflane/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	HRStats(w http.ResponseWriter, r *http.Request)
	ManagerStats(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
	Activities(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// HRStats implements DashboardHandler.
func (h *DashboardHandlerImpl) HRStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.HRStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ManagerStats implements DashboardHandler.
func (h *DashboardHandlerImpl) ManagerStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.ManagerStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EmployeeStats implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.EmployeeStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Activities implements DashboardHandler.
func (h *DashboardHandlerImpl) Activities(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Activities(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

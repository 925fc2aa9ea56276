package http

import (
	"net/http"

	"github.com/ydm-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/ydm-hr/hr-backend-go/internal/handler/http/response"
)

type DashboardHandler struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetDailyStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

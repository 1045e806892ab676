package dashboardhandler

import (
	"net/http"
	"time"

	"assetdesk/fixtures"
	"assetdesk/utils"
)

const dashboardLatency = time.Second

type DashboardHandler struct {
	Data            *fixtures.Dataset
	SimulateLatency bool
}

func NewDashboardHandler(data *fixtures.Dataset, simulateLatency bool) *DashboardHandler {
	return &DashboardHandler{Data: data, SimulateLatency: simulateLatency}
}

func (h *DashboardHandler) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	if h.SimulateLatency {
		utils.SimulateLatency(r.Context(), dashboardLatency)
	}
	utils.RespondJSON(w, http.StatusOK, h.Data.EmployeeDashboard)
}

func (h *DashboardHandler) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if h.SimulateLatency {
		utils.SimulateLatency(r.Context(), dashboardLatency)
	}
	utils.RespondJSON(w, http.StatusOK, h.Data.AdminDashboard)
}


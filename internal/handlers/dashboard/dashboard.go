// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"net/http"

	"crm-service/internal/pkg/response"
	service "crm-service/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the dashboard metrics snapshot
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	result, err := h.dashboardService.Compute(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to compute dashboard", err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard computed", result)
}

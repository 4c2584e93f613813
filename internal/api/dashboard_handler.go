package api

import (
	"net/http"

	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service dependency.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetWeeklyVolume handles GET /dashboard/volume. The response always has one
// entry per muscle group, zero counts included.
func (h *DashboardHandler) GetWeeklyVolume(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	volume, err := h.dashboardService.GetWeeklyVolume(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute weekly volume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"volume": volume})
}

// GetCoachInsight handles GET /dashboard/insight.
func (h *DashboardHandler) GetCoachInsight(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	insight, err := h.dashboardService.GetCoachInsight(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to produce insight")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

package api

import (
	"fmt"
	"net/http"

	"purelift/server/internal/domain"
	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler holds the settings service dependency.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// --- DTOs for API (Data Transfer Objects) ---

type UpdateSettingsRequest struct {
	VolumeGoals     map[domain.MuscleGroup]int `json:"volumeGoals"`
	DefaultRestTime int                        `json:"defaultRestTime"`
}

// GetSettings handles GET /settings. Users who never saved settings get the
// defaults.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings with a wholesale replacement.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), userID, domain.UserSettings{
		VolumeGoals:     req.VolumeGoals,
		DefaultRestTime: req.DefaultRestTime,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

package api

import (
	"net/http"

	"purelift/server/internal/domain"
	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// BootstrapHandler serves the single call a client makes after login: starter
// data seeding for brand-new users plus everything needed to render the app.
type BootstrapHandler struct {
	exerciseService service.ExerciseService
	settingsService service.SettingsService
}

// NewBootstrapHandler creates a new BootstrapHandler.
func NewBootstrapHandler(exerciseService service.ExerciseService, settingsService service.SettingsService) *BootstrapHandler {
	return &BootstrapHandler{
		exerciseService: exerciseService,
		settingsService: settingsService,
	}
}

// BootstrapResponse is the initial app state.
type BootstrapResponse struct {
	Exercises []domain.Exercise    `json:"exercises"`
	Routines  []domain.Routine     `json:"routines"`
	Settings  *domain.UserSettings `json:"settings"`
}

// Bootstrap handles GET /bootstrap. Seeding happens at most once, when the
// user has neither exercises nor routines.
func (h *BootstrapHandler) Bootstrap(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	exercises, routines, err := h.exerciseService.EnsureSeeded(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load initial data")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, BootstrapResponse{
		Exercises: exercises,
		Routines:  routines,
		Settings:  settings,
	})
}

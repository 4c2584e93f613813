package api

import (
	"errors"
	"fmt"
	"net/http"

	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest carries the free-text description of the exercise,
// e.g. "incline dumbbell press". Classification fills in the rest.
type CreateExerciseRequest struct {
	Text string `json:"text" binding:"required"`
}

// GetExercises handles GET /exercises and returns the user's full catalog.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	exercises, err := h.exerciseService.GetExercises(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises")
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// CreateExercise handles POST /exercises. Free text in, a classified catalog
// entry out. An existing entry with the same name is returned instead of a
// duplicate being created.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.CreateFromText(c.Request.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Exercise text cannot be empty")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

// GetAlternatives handles GET /exercises/:id/alternatives.
func (h *ExerciseHandler) GetAlternatives(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	alternatives, err := h.exerciseService.GetAlternatives(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to suggest alternatives")
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}

// GetFormTips handles GET /exercises/:id/tips.
func (h *ExerciseHandler) GetFormTips(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	tips, err := h.exerciseService.GetFormTips(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch form tips")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

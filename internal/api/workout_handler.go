package api

import (
	"errors"
	"fmt"
	"net/http"

	"purelift/server/internal/progression"
	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout (live session) service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

type StartSessionRequest struct {
	RoutineID string `json:"routineId" binding:"required"`
}

// Value carries no required tag: zero is a legal value for both fields
// (bodyweight movements, clearing a rep count).
type UpdateSetRequest struct {
	Field string  `json:"field" binding:"required,oneof=weight reps"`
	Value float64 `json:"value"`
}

type AddExerciseRequest struct {
	Text string `json:"text" binding:"required"`
}

type SwapExerciseRequest struct {
	ExerciseID  string `json:"exerciseId" binding:"required"`
	Replacement string `json:"replacement" binding:"required"`
}

// StartSession handles POST /session/start. Any existing session is replaced.
func (h *WorkoutHandler) StartSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	state, err := h.workoutService.Start(c.Request.Context(), userID, req.RoutineID)
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, "Routine not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to start session")
		return
	}

	c.JSON(http.StatusCreated, state)
}

// GetSession handles GET /session.
func (h *WorkoutHandler) GetSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	state, err := h.workoutService.Current(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, "No active session")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load session")
		return
	}

	c.JSON(http.StatusOK, state)
}

// UpdateSet handles PATCH /session/sets/:setId for weight and rep edits.
func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	field := progression.FieldWeight
	if req.Field == "reps" {
		field = progression.FieldReps
	}

	set, err := h.workoutService.UpdateSet(c.Request.Context(), userID, c.Param("setId"), field, req.Value)
	if err != nil {
		h.abortSessionError(c, err, "Failed to update set")
		return
	}

	c.JSON(http.StatusOK, set)
}

// ToggleSet handles POST /session/sets/:setId/toggle.
func (h *WorkoutHandler) ToggleSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	result, err := h.workoutService.ToggleSet(c.Request.Context(), userID, c.Param("setId"))
	if err != nil {
		h.abortSessionError(c, err, "Failed to toggle set")
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddExercise handles POST /session/exercises for ad-hoc additions.
func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	state, err := h.workoutService.AddExercise(c.Request.Context(), userID, req.Text)
	if err != nil {
		h.abortSessionError(c, err, "Failed to add exercise")
		return
	}

	c.JSON(http.StatusOK, state)
}

// SwapExercise handles POST /session/swap.
func (h *WorkoutHandler) SwapExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req SwapExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	state, err := h.workoutService.SwapExercise(c.Request.Context(), userID, req.ExerciseID, req.Replacement)
	if err != nil {
		h.abortSessionError(c, err, "Failed to swap exercise")
		return
	}

	c.JSON(http.StatusOK, state)
}

// FinishSession handles POST /session/finish. On success the session is gone
// and the response carries the progression outcome.
func (h *WorkoutHandler) FinishSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	result, err := h.workoutService.Finish(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, "No active session")
			return
		}
		if errors.Is(err, service.ErrPersistFailed) {
			// Session is kept server-side; the client may retry finishing.
			abortWithError(c, http.StatusServiceUnavailable, "Failed to save completed sets, please retry")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to finish session")
		return
	}

	c.JSON(http.StatusOK, result)
}

// AbandonSession handles DELETE /session. Nothing is persisted.
func (h *WorkoutHandler) AbandonSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	h.workoutService.Abandon(userID)
	c.Status(http.StatusNoContent)
}

func (h *WorkoutHandler) abortSessionError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNoActiveSession):
		abortWithError(c, http.StatusNotFound, "No active session")
	case errors.Is(err, service.ErrSetNotFound):
		abortWithError(c, http.StatusNotFound, "Set not found in active session")
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, "Invalid request")
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

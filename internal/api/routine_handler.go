package api

import (
	"errors"
	"fmt"
	"net/http"

	"purelift/server/internal/domain"
	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// RoutineHandler holds the routine service dependency.
type RoutineHandler struct {
	routineService service.RoutineService
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routineService service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// --- DTOs for API (Data Transfer Objects) ---

type CreateRoutineRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRoutineRequest struct {
	Name        string                      `json:"name" binding:"required"`
	ExerciseIDs []string                    `json:"exerciseIds"`
	Targets     map[string]domain.SetTarget `json:"targets"`
}

type GenerateRoutineRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GetRoutines handles GET /routines.
func (h *RoutineHandler) GetRoutines(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	routines, err := h.routineService.GetRoutines(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve routines")
		return
	}

	c.JSON(http.StatusOK, routines)
}

// CreateRoutine handles POST /routines.
func (h *RoutineHandler) CreateRoutine(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	routine, err := h.routineService.CreateRoutine(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Routine name cannot be empty")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create routine")
		return
	}

	c.JSON(http.StatusCreated, routine)
}

// UpdateRoutine handles PUT /routines/:id with a wholesale replacement of
// name, exercise order and targets.
func (h *RoutineHandler) UpdateRoutine(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	routine, err := h.routineService.UpdateRoutine(c.Request.Context(), userID, domain.Routine{
		ID:          c.Param("id"),
		Name:        req.Name,
		ExerciseIDs: req.ExerciseIDs,
		Targets:     req.Targets,
	})
	if err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, "Routine not found")
			return
		}
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Routine name cannot be empty")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update routine")
		return
	}

	c.JSON(http.StatusOK, routine)
}

// DeleteRoutine handles DELETE /routines/:id.
func (h *RoutineHandler) DeleteRoutine(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	if err := h.routineService.DeleteRoutine(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrRoutineNotFound) {
			abortWithError(c, http.StatusNotFound, "Routine not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete routine")
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateRoutine handles POST /routines/generate. The prompt describes the
// desired routine in free text.
func (h *RoutineHandler) GenerateRoutine(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	var req GenerateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	routine, err := h.routineService.GenerateRoutine(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Prompt cannot be empty")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate routine")
		return
	}

	c.JSON(http.StatusCreated, routine)
}

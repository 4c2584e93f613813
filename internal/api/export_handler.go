package api

import (
	"net/http"

	"purelift/server/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler holds the export service dependency.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportData handles POST /export: archives the user's full training data as
// JSON and returns a time-limited download URL.
func (h *ExportHandler) ExportData(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	result, err := h.exportService.ExportUserData(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export data")
		return
	}

	c.JSON(http.StatusOK, result)
}

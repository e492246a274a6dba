package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// ExportService snapshots notes into object storage and reads them back.
type ExportService interface {
	Create(ctx context.Context, ownerID uuid.UUID) (model.NoteExport, error)
	Open(ctx context.Context, ownerID uuid.UUID, id string) (io.ReadCloser, error)
}

// Export handles HTTP endpoints for note exports.
type Export struct {
	exportService  ExportService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewExport creates a new Export handler.
func NewExport(exportService ExportService, contextManager model.ContextManager, logger *logger.Logger) *Export {
	return &Export{exportService: exportService, contextManager: contextManager, logger: logger}
}

// Create handles POST /api/notes/exports.
func (h *Export) Create(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	export, err := h.exportService.Create(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}

// Download handles GET /api/notes/exports/:id and streams the stored JSON.
func (h *Export) Download(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	id := c.Param("id")
	rc, err := h.exportService.Open(c.Request.Context(), user.ID, id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="notes-%s.json"`, id))
	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Headers are already sent; the client sees a truncated body.
		h.logger.Error("Export handler: failed to stream export",
			"user_id", user.ID,
			"export_id", id,
			"error", err.Error())
	}
}

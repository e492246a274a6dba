package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

const pingTimeout = 2 * time.Second

// Health reports liveness and store readiness.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Root handles GET /.
func (h *Health) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Note Taking App API is running!"})
}

// Ready handles GET /healthz.
func (h *Health) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: store ping failed",
			"error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

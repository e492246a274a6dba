package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pandey-i/note-taking-app/internal/logger"
)

// Logging is a gin middleware that logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path

	c.Next()

	status := c.Writer.Status()
	args := []any{
		"method", c.Request.Method,
		"path", path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"size", c.Writer.Size(),
	}

	switch {
	case status >= 500:
		l.logger.Error("HTTP request failed", args...)
	case len(c.Errors) > 0:
		l.logger.Warn("HTTP request completed with errors", append(args, "errors", c.Errors.String())...)
	default:
		l.logger.Info("HTTP request completed", args...)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// handleError writes err as a JSON error body. Anything that is not an
// *apierror.APIError becomes a generic server error and is logged.
func handleError(c *gin.Context, logger *logger.Logger, err error) {
	apiErr := apierror.From(err)
	if apiErr.Kind == apierror.KindTransport {
		logger.Error("HTTP handler: request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
	}
	c.JSON(apiErr.Status, apiErr.Response())
}

// bindJSON decodes the body into req, writing a 400 on malformed input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apiErr := apierror.NewErrMissingFields("Invalid request body")
		c.JSON(apiErr.Status, apiErr.Response())
		return false
	}
	return true
}

// currentUser returns the user placed in the context by the authenticate
// middleware.
func currentUser(c *gin.Context, contextManager model.ContextManager) (model.PublicUser, bool) {
	user, ok := contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		apiErr := apierror.NewErrMissingToken()
		c.JSON(apiErr.Status, apiErr.Response())
		return model.PublicUser{}, false
	}
	return user, true
}

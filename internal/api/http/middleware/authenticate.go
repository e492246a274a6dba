package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// SessionService resolves bearer tokens to users.
type SessionService interface {
	Authenticate(ctx context.Context, token string) (model.PublicUser, error)
}

// Authenticate validates bearer tokens and injects the user into the request context.
type Authenticate struct {
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessionService SessionService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessionService: sessionService, contextManager: contextManager, logger: logger}
}

// Handle aborts the request with 401 unless it carries a valid bearer token.
func (m *Authenticate) Handle(c *gin.Context) {
	token, err := extractToken(c.GetHeader("Authorization"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	user, err := m.sessionService.Authenticate(c.Request.Context(), token)
	if err != nil {
		apiErr := apierror.From(err)
		if apiErr.Kind == apierror.KindTransport {
			m.logger.Error("Authenticate middleware: failed to authenticate",
				"path", c.Request.URL.Path,
				"error", err.Error())
		}
		abortWithError(c, apiErr)
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetUserToContext(c.Request.Context(), user))
	c.Next()
}

// extractToken returns "" for an absent header so the session service
// reports the missing token.
func extractToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", nil
	}

	scheme, token, found := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", apierror.NewErrInvalidToken(nil)
	}
	if !found {
		return "", nil
	}
	return strings.TrimSpace(token), nil
}

func abortWithError(c *gin.Context, err error) {
	apiErr := apierror.From(err)
	c.AbortWithStatusJSON(apiErr.Status, apiErr.Response())
}

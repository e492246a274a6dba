package context

import (
	"context"

	"github.com/pandey-i/note-taking-app/internal/model"
)

type userKey struct{}

// Manager stores the authenticated user in a request context.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.PublicUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user stored by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.PublicUser, bool) {
	user, ok := ctx.Value(userKey{}).(model.PublicUser)
	return user, ok
}

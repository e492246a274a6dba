package model

import (
	"context"
)

// ContextManager attaches the authenticated user to a request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user PublicUser) context.Context
	GetUserFromContext(ctx context.Context) (PublicUser, bool)
}

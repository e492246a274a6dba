package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pandey-i/note-taking-app/internal/model"
)

func TestManager_SetAndGetUser(t *testing.T) {
	m := NewManager()
	user := model.PublicUser{ID: uuid.New(), Email: "a@x.com", Name: "Ann"}
	ctx := m.SetUserToContext(stdctx.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetUser_IgnoresForeignKeys(t *testing.T) {
	m := NewManager()
	ctx := stdctx.WithValue(stdctx.Background(), "user", model.PublicUser{Email: "x"})
	_, ok := m.GetUserFromContext(ctx)
	assert.False(t, ok)
}

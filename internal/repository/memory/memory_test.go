package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandey-i/note-taking-app/internal/model"
)

func strPtr(s string) *string { return &s }

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	u := model.User{ID: uuid.New(), Email: "ann@x.com", PasswordHash: strPtr("hash"), Name: "Ann"}
	u.SetOTP(model.OTP{Value: "123456", ExpiresAt: time.Now().Add(time.Minute)})
	_, err := r.Create(ctx, u)
	require.NoError(t, err)

	_, err = r.Create(ctx, model.User{ID: uuid.New(), Email: "ann@x.com"})
	require.ErrorIs(t, err, model.ErrDuplicateEmail)

	got, err := r.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	*got.OTP = "000000"
	again, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", *again.OTP, "stored user must not alias returned pointers")

	again.ClearOTP()
	again.ExternalID = strPtr("sub-1")
	require.NoError(t, r.Save(ctx, again))

	linked, err := r.GetByExternalID(ctx, "sub-1")
	require.NoError(t, err)
	assert.False(t, linked.HasPendingOTP())

	_, err = r.Create(ctx, model.User{ID: uuid.New(), Email: "bob@x.com", ExternalID: strPtr("sub-1")})
	require.ErrorIs(t, err, model.ErrDuplicateExternalID)

	_, err = r.GetByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, r.Save(ctx, model.User{ID: uuid.New()}), model.ErrNotFound)
}

func TestUserRepository_ConcurrentSaveLastWriteWins(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	u := model.User{ID: uuid.New(), Email: "ann@x.com", PasswordHash: strPtr("hash")}
	_, err := r.Create(ctx, u)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cp := u
			cp.SetOTP(model.OTP{Value: "111111", ExpiresAt: time.Now()})
			assert.NoError(t, r.Save(ctx, cp))
		}()
	}
	wg.Wait()

	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.HasPendingOTP())
}

func TestNoteRepository(t *testing.T) {
	ctx := context.Background()
	r := NewNoteRepository()
	owner, stranger := uuid.New(), uuid.New()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	older, err := r.Create(ctx, model.Note{ID: uuid.New(), OwnerID: owner, Title: "older", Content: "a", CreatedAt: base})
	require.NoError(t, err)
	newer, err := r.Create(ctx, model.Note{ID: uuid.New(), OwnerID: owner, Title: "newer", Content: "b", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = r.Create(ctx, model.Note{ID: uuid.New(), OwnerID: stranger, Title: "theirs", Content: "c", CreatedAt: base})
	require.NoError(t, err)

	list, err := r.GetByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)

	_, err = r.GetByID(ctx, stranger, older.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	updatedAt := base.Add(2 * time.Hour)
	r.clock = func() time.Time { return updatedAt }
	updated, err := r.Update(ctx, owner, older.ID, "renamed", "changed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, updatedAt, updated.UpdatedAt)
	assert.Equal(t, base, updated.CreatedAt)

	_, err = r.Update(ctx, stranger, older.ID, "x", "y")
	require.ErrorIs(t, err, model.ErrNotFound)

	require.ErrorIs(t, r.Delete(ctx, stranger, older.ID), model.ErrNotFound)
	require.NoError(t, r.Delete(ctx, owner, older.ID))
	_, err = r.GetByID(ctx, owner, older.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	empty, err := r.GetByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/pandey-i/note-taking-app/internal/model"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewNoteRepository(t *testing.T) {
	db := &Connection{}
	repo := NewNoteRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email constraint",
			err:  &pgconn.PgError{Code: uniqueViolation, ConstraintName: usersEmailKey},
			want: model.ErrDuplicateEmail,
		},
		{
			name: "google id constraint",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: usersGoogleIDKey}),
			want: model.ErrDuplicateExternalID,
		},
		{
			name: "other constraint",
			err:  &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_pkey"},
		},
		{
			name: "other error code",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: usersEmailKey},
		},
		{
			name: "not a postgres error",
			err:  errors.New("conn closed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, duplicateError(tt.err))
		})
	}
}

func TestWrapNotFound(t *testing.T) {
	assert.Equal(t, model.ErrNotFound, wrapNotFound(pgx.ErrNoRows, "failed"))

	boom := errors.New("boom")
	err := wrapNotFound(boom, "failed to get user")
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "failed to get user: boom")
}

// Package memory provides process-local stores for tests and local runs.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]model.User)}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByExternalID(_ context.Context, externalID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ExternalID != nil && *u.ExternalID == externalID {
			return cloneUser(u), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(user); err != nil {
		return model.User{}, err
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *UserRepository) Save(_ context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return model.ErrNotFound
	}
	if err := r.checkUnique(user); err != nil {
		return err
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

// checkUnique must be called with the write lock held.
func (r *UserRepository) checkUnique(user model.User) error {
	for id, u := range r.users {
		if id == user.ID {
			continue
		}
		if u.Email == user.Email {
			return model.ErrDuplicateEmail
		}
		if u.ExternalID != nil && user.ExternalID != nil && *u.ExternalID == *user.ExternalID {
			return model.ErrDuplicateExternalID
		}
	}
	return nil
}

// cloneUser copies pointer fields so callers cannot mutate stored state.
func cloneUser(u model.User) model.User {
	u.PasswordHash = clonePtr(u.PasswordHash)
	u.ExternalID = clonePtr(u.ExternalID)
	u.OTP = clonePtr(u.OTP)
	u.OTPExpiresAt = clonePtr(u.OTPExpiresAt)
	return u
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

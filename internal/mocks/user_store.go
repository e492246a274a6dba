package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// UserStore is a mock type for the model.UserStore type.
type UserStore struct {
	mock.Mock
}

func (_m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByExternalID(ctx context.Context, externalID string) (model.User, error) {
	ret := _m.Called(ctx, externalID)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (_m *UserStore) Save(ctx context.Context, user model.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// NewUserStore creates a new instance of UserStore. It also registers a
// cleanup function to assert the mocks expectations.
func NewUserStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

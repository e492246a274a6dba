package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// IdentityVerifier is a mock type for the model.IdentityVerifier type.
type IdentityVerifier struct {
	mock.Mock
}

func (_m *IdentityVerifier) Verify(ctx context.Context, credential string) (model.ExternalIdentity, error) {
	ret := _m.Called(ctx, credential)
	return ret.Get(0).(model.ExternalIdentity), ret.Error(1)
}

// NewIdentityVerifier creates a new instance of IdentityVerifier. It also
// registers a cleanup function to assert the mocks expectations.
func NewIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdentityVerifier {
	m := &IdentityVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// PasswordHasher is a mock type for the model.PasswordHasher type.
type PasswordHasher struct {
	mock.Mock
}

func (_m *PasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Compare(hash, password string) (bool, error) {
	ret := _m.Called(hash, password)
	return ret.Bool(0), ret.Error(1)
}

// NewPasswordHasher creates a new instance of PasswordHasher. It also
// registers a cleanup function to assert the mocks expectations.
func NewPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *PasswordHasher {
	m := &PasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

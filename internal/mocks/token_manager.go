package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TokenManager is a mock type for the model.TokenManager type.
type TokenManager struct {
	mock.Mock
}

func (_m *TokenManager) GenerateToken(userID uuid.UUID) (string, error) {
	ret := _m.Called(userID)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseToken(token string) (uuid.UUID, error) {
	ret := _m.Called(token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

// NewTokenManager creates a new instance of TokenManager. It also registers
// a cleanup function to assert the mocks expectations.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

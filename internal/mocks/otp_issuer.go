package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// OTPIssuer is a mock type for the model.OTPIssuer type.
type OTPIssuer struct {
	mock.Mock
}

func (_m *OTPIssuer) Issue(now time.Time) (model.OTP, error) {
	ret := _m.Called(now)
	return ret.Get(0).(model.OTP), ret.Error(1)
}

func (_m *OTPIssuer) Validate(user model.User, submitted string, now time.Time) error {
	ret := _m.Called(user, submitted, now)
	return ret.Error(0)
}

// NewOTPIssuer creates a new instance of OTPIssuer. It also registers a
// cleanup function to assert the mocks expectations.
func NewOTPIssuer(t interface {
	mock.TestingT
	Cleanup(func())
}) *OTPIssuer {
	m := &OTPIssuer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

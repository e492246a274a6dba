package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// Mailer is a mock type for the model.Mailer type.
type Mailer struct {
	mock.Mock
}

func (_m *Mailer) Send(ctx context.Context, msg model.Message) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

// NewMailer creates a new instance of Mailer. It also registers a cleanup
// function to assert the mocks expectations.
func NewMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Mailer {
	m := &Mailer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// AuthService is a mock type for the handler.AuthService type.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	ret := _m.Called(ctx, email, password, name)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthService) VerifyOTP(ctx context.Context, email, code string) (model.Session, error) {
	ret := _m.Called(ctx, email, code)
	return ret.Get(0).(model.Session), ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	ret := _m.Called(ctx, email, password)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthService) GoogleLogin(ctx context.Context, credential string) (model.Session, error) {
	ret := _m.Called(ctx, credential)
	return ret.Get(0).(model.Session), ret.Error(1)
}

// NewAuthService creates a new instance of AuthService. It also registers a
// cleanup function to assert the mocks expectations.
func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// SessionService is a mock type for the middleware.SessionService type.
type SessionService struct {
	mock.Mock
}

func (_m *SessionService) Authenticate(ctx context.Context, token string) (model.PublicUser, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(model.PublicUser), ret.Error(1)
}

// NewSessionService creates a new instance of SessionService. It also
// registers a cleanup function to assert the mocks expectations.
func NewSessionService(t testingT) *SessionService {
	m := &SessionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// NoteService is a mock type for the handler.NoteService type.
type NoteService struct {
	mock.Mock
}

func (_m *NoteService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	ret := _m.Called(ctx, ownerID)
	notes, _ := ret.Get(0).([]model.Note)
	return notes, ret.Error(1)
}

func (_m *NoteService) Create(ctx context.Context, ownerID uuid.UUID, input model.NoteInput) (model.Note, error) {
	ret := _m.Called(ctx, ownerID, input)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) Get(ctx context.Context, ownerID uuid.UUID, id string) (model.Note, error) {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) Update(ctx context.Context, ownerID uuid.UUID, id string, input model.NoteInput) (model.Note, error) {
	ret := _m.Called(ctx, ownerID, id, input)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteService) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Error(0)
}

// NewNoteService creates a new instance of NoteService. It also registers a
// cleanup function to assert the mocks expectations.
func NewNoteService(t testingT) *NoteService {
	m := &NoteService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ExportService is a mock type for the handler.ExportService type.
type ExportService struct {
	mock.Mock
}

func (_m *ExportService) Create(ctx context.Context, ownerID uuid.UUID) (model.NoteExport, error) {
	ret := _m.Called(ctx, ownerID)
	return ret.Get(0).(model.NoteExport), ret.Error(1)
}

func (_m *ExportService) Open(ctx context.Context, ownerID uuid.UUID, id string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, ownerID, id)
	rc, _ := ret.Get(0).(io.ReadCloser)
	return rc, ret.Error(1)
}

// NewExportService creates a new instance of ExportService. It also
// registers a cleanup function to assert the mocks expectations.
func NewExportService(t testingT) *ExportService {
	m := &ExportService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

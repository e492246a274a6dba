package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// NoteStore is a mock type for the model.NoteStore type.
type NoteStore struct {
	mock.Mock
}

func (_m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	ret := _m.Called(ctx, note)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	ret := _m.Called(ctx, ownerID)
	notes, _ := ret.Get(0).([]model.Note)
	return notes, ret.Error(1)
}

func (_m *NoteStore) Update(ctx context.Context, ownerID, id uuid.UUID, title, content string) (model.Note, error) {
	ret := _m.Called(ctx, ownerID, id, title, content)
	return ret.Get(0).(model.Note), ret.Error(1)
}

func (_m *NoteStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	ret := _m.Called(ctx, ownerID, id)
	return ret.Error(0)
}

// NewNoteStore creates a new instance of NoteStore. It also registers a
// cleanup function to assert the mocks expectations.
func NewNoteStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *NoteStore {
	m := &NoteStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxNoteTitleLength is the longest title accepted, in characters.
const MaxNoteTitleLength = 100

// NoteStore defines persistence operations for notes. Every lookup is scoped
// to the owning user.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Note, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]Note, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, title, content string) (Note, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Note is a text note owned by a single user.
type Note struct {
	ID        uuid.UUID `json:"_id"`
	OwnerID   uuid.UUID `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteInput carries client-supplied note fields.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteExport describes a snapshot of a user's notes kept in object storage.
type NoteExport struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"-"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]model.Note
	clock func() time.Time
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{notes: make(map[uuid.UUID]model.Note), clock: time.Now}
}

func (r *NoteRepository) Create(_ context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[note.ID] = note
	return note, nil
}

func (r *NoteRepository) GetByID(_ context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[id]
	if !ok || n.OwnerID != ownerID {
		return model.Note{}, model.ErrNotFound
	}
	return n, nil
}

// GetByOwner returns the owner's notes, newest first.
func (r *NoteRepository) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			notes = append(notes, n)
		}
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *NoteRepository) Update(_ context.Context, ownerID, id uuid.UUID, title, content string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.OwnerID != ownerID {
		return model.Note{}, model.ErrNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = r.clock()
	r.notes[id] = n
	return n, nil
}

func (r *NoteRepository) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.OwnerID != ownerID {
		return model.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

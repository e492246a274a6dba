package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// Note manages notes on behalf of their owner.
type Note struct {
	noteStore model.NoteStore
	logger    *logger.Logger
	clock     func() time.Time
}

func NewNote(noteStore model.NoteStore, logger *logger.Logger) *Note {
	return &Note{noteStore: noteStore, logger: logger, clock: time.Now}
}

func (s *Note) List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	notes, err := s.noteStore.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Note service: failed to list notes",
			"user_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

func (s *Note) Create(ctx context.Context, ownerID uuid.UUID, input model.NoteInput) (model.Note, error) {
	title, content, err := validateNote(input)
	if err != nil {
		return model.Note{}, err
	}

	now := s.clock()
	note, err := s.noteStore.Create(ctx, model.Note{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"user_id", ownerID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Debug("Note service: note created",
		"user_id", ownerID,
		"note_id", note.ID)

	return note, nil
}

func (s *Note) Get(ctx context.Context, ownerID uuid.UUID, id string) (model.Note, error) {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return model.Note{}, apierror.NewErrNoteNotFound()
	}

	note, err := s.noteStore.GetByID(ctx, ownerID, noteID)
	if err != nil {
		return model.Note{}, s.storeError(err, "get", ownerID, noteID)
	}
	return note, nil
}

func (s *Note) Update(ctx context.Context, ownerID uuid.UUID, id string, input model.NoteInput) (model.Note, error) {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return model.Note{}, apierror.NewErrNoteNotFound()
	}

	title, content, err := validateNote(input)
	if err != nil {
		return model.Note{}, err
	}

	note, err := s.noteStore.Update(ctx, ownerID, noteID, title, content)
	if err != nil {
		return model.Note{}, s.storeError(err, "update", ownerID, noteID)
	}
	return note, nil
}

func (s *Note) Delete(ctx context.Context, ownerID uuid.UUID, id string) error {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return apierror.NewErrNoteNotFound()
	}

	if err := s.noteStore.Delete(ctx, ownerID, noteID); err != nil {
		return s.storeError(err, "delete", ownerID, noteID)
	}

	s.logger.Debug("Note service: note deleted",
		"user_id", ownerID,
		"note_id", noteID)

	return nil
}

// storeError hides foreign notes behind the same error as missing ones.
func (s *Note) storeError(err error, op string, ownerID, noteID uuid.UUID) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrNoteNotFound()
	}
	s.logger.Error("Note service: failed to "+op+" note",
		"user_id", ownerID,
		"note_id", noteID,
		"error", err.Error())
	return fmt.Errorf("failed to %s note: %w", op, err)
}

func validateNote(input model.NoteInput) (string, string, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	if title == "" || content == "" {
		return "", "", apierror.NewErrInvalidNote("Title and content are required")
	}
	if utf8.RuneCountInString(title) > model.MaxNoteTitleLength {
		return "", "", apierror.NewErrTitleTooLong(model.MaxNoteTitleLength)
	}
	return title, content, nil
}

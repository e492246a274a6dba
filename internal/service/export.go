package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// Export snapshots a user's notes into object storage.
type Export struct {
	noteStore model.NoteStore
	storage   model.Storage
	logger    *logger.Logger
	clock     func() time.Time
}

func NewExport(noteStore model.NoteStore, storage model.Storage, logger *logger.Logger) *Export {
	return &Export{noteStore: noteStore, storage: storage, logger: logger, clock: time.Now}
}

// Create writes the owner's current notes as a JSON array.
func (s *Export) Create(ctx context.Context, ownerID uuid.UUID) (model.NoteExport, error) {
	notes, err := s.noteStore.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Export service: failed to list notes",
			"user_id", ownerID,
			"error", err.Error())
		return model.NoteExport{}, fmt.Errorf("failed to list notes: %w", err)
	}

	body, err := json.Marshal(notes)
	if err != nil {
		return model.NoteExport{}, fmt.Errorf("failed to encode notes: %w", err)
	}

	export := model.NoteExport{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Count:     len(notes),
		CreatedAt: s.clock(),
	}

	key := exportKey(ownerID, export.ID)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(body), int64(len(body))); err != nil {
		s.logger.Error("Export service: failed to upload export",
			"user_id", ownerID,
			"key", key,
			"error", err.Error())
		return model.NoteExport{}, fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.Info("Export service: export created",
		"user_id", ownerID,
		"export_id", export.ID,
		"count", export.Count)

	return export, nil
}

// Open streams back an export owned by ownerID. The caller closes the reader.
func (s *Export) Open(ctx context.Context, ownerID uuid.UUID, id string) (io.ReadCloser, error) {
	exportID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierror.NewErrExportNotFound()
	}

	key := exportKey(ownerID, exportID)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		s.logger.Error("Export service: failed to stat export",
			"key", key,
			"error", err.Error())
		return nil, fmt.Errorf("failed to stat export: %w", err)
	}
	if !exists {
		return nil, apierror.NewErrExportNotFound()
	}

	rc, err := s.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apierror.NewErrExportNotFound()
		}
		s.logger.Error("Export service: failed to download export",
			"key", key,
			"error", err.Error())
		return nil, fmt.Errorf("failed to download export: %w", err)
	}

	return rc, nil
}

// Keys embed the owner so one user cannot address another's exports.
func exportKey(ownerID, exportID uuid.UUID) string {
	return fmt.Sprintf("exports/%s/%s.json", ownerID, exportID)
}

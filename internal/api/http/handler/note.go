package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// NoteService defines owner-scoped note operations.
type NoteService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error)
	Create(ctx context.Context, ownerID uuid.UUID, input model.NoteInput) (model.Note, error)
	Get(ctx context.Context, ownerID uuid.UUID, id string) (model.Note, error)
	Update(ctx context.Context, ownerID uuid.UUID, id string, input model.NoteInput) (model.Note, error)
	Delete(ctx context.Context, ownerID uuid.UUID, id string) error
}

// Note handles HTTP endpoints for notes.
type Note struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{noteService: noteService, contextManager: contextManager, logger: logger}
}

func (h *Note) List(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	notes, err := h.noteService.List(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *Note) Create(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	var input model.NoteInput
	if !bindJSON(c, &input) {
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), user.ID, input)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *Note) Get(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	note, err := h.noteService.Get(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Note) Update(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	var input model.NoteInput
	if !bindJSON(c, &input) {
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), user.ID, c.Param("id"), input)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *Note) Delete(c *gin.Context) {
	user, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

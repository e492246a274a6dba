package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/mocks"
	"github.com/pandey-i/note-taking-app/internal/model"
	"github.com/pandey-i/note-taking-app/internal/testutil"
)

func setupNoteRouter(t *testing.T) (*gin.Engine, *mocks.NoteService) {
	t.Helper()
	r, ctxManager := newTestEngine()
	svc := mocks.NewNoteService(t)
	h := NewNote(svc, ctxManager, testutil.MakeNoopLogger())

	notes := r.Group("/api/notes", asUser(ctxManager, testUser))
	notes.GET("", h.List)
	notes.POST("", h.Create)
	notes.GET("/:id", h.Get)
	notes.PUT("/:id", h.Update)
	notes.DELETE("/:id", h.Delete)
	return r, svc
}

func TestNote_List(t *testing.T) {
	r, svc := setupNoteRouter(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := []model.Note{{ID: uuid.New(), OwnerID: testUser.ID, Title: "t", Content: "c", CreatedAt: created, UpdatedAt: created}}
	svc.On("List", mock.Anything, testUser.ID).Return(stored, nil)

	w := doJSON(t, r, http.MethodGet, "/api/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[[]map[string]any](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, stored[0].ID.String(), got[0]["_id"])
	assert.Equal(t, testUser.ID.String(), got[0]["user"])
	assert.Equal(t, "t", got[0]["title"])
	assert.Equal(t, "2024-03-01T12:00:00Z", got[0]["createdAt"])
}

func TestNote_Create(t *testing.T) {
	r, svc := setupNoteRouter(t)
	input := model.NoteInput{Title: "t", Content: "c"}
	svc.On("Create", mock.Anything, testUser.ID, input).Return(model.Note{ID: uuid.New(), Title: "t", Content: "c"}, nil)
	svc.On("Create", mock.Anything, testUser.ID, model.NoteInput{Content: "c"}).
		Return(model.Note{}, apierror.NewErrInvalidNote("Title and content are required"))

	w := doJSON(t, r, http.MethodPost, "/api/notes", input)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "t", decode[model.Note](t, w).Title)

	w = doJSON(t, r, http.MethodPost, "/api/notes", model.NoteInput{Content: "c"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title and content are required", decode[apierror.Response](t, w).Message)
}

func TestNote_GetUpdateDelete(t *testing.T) {
	noteID := uuid.New()
	path := "/api/notes/" + noteID.String()

	tests := []struct {
		name       string
		method     string
		body       any
		setup      func(svc *mocks.NoteService)
		wantStatus int
		wantMsg    string
	}{
		{
			name:   "get found",
			method: http.MethodGet,
			setup: func(svc *mocks.NoteService) {
				svc.On("Get", mock.Anything, testUser.ID, noteID.String()).Return(model.Note{ID: noteID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "get foreign",
			method: http.MethodGet,
			setup: func(svc *mocks.NoteService) {
				svc.On("Get", mock.Anything, testUser.ID, noteID.String()).Return(model.Note{}, apierror.NewErrNoteNotFound())
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Note not found",
		},
		{
			name:   "update too long",
			method: http.MethodPut,
			body:   model.NoteInput{Title: "x", Content: "c"},
			setup: func(svc *mocks.NoteService) {
				svc.On("Update", mock.Anything, testUser.ID, noteID.String(), model.NoteInput{Title: "x", Content: "c"}).
					Return(model.Note{}, apierror.NewErrTitleTooLong(100))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Title must be less than 100 characters",
		},
		{
			name:   "update ok",
			method: http.MethodPut,
			body:   model.NoteInput{Title: "x", Content: "c"},
			setup: func(svc *mocks.NoteService) {
				svc.On("Update", mock.Anything, testUser.ID, noteID.String(), model.NoteInput{Title: "x", Content: "c"}).
					Return(model.Note{ID: noteID, Title: "x"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete ok",
			method: http.MethodDelete,
			setup: func(svc *mocks.NoteService) {
				svc.On("Delete", mock.Anything, testUser.ID, noteID.String()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantMsg:    "Note deleted successfully",
		},
		{
			name:   "delete store failure",
			method: http.MethodDelete,
			setup: func(svc *mocks.NoteService) {
				svc.On("Delete", mock.Anything, testUser.ID, noteID.String()).Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupNoteRouter(t)
			tt.setup(svc)

			w := doJSON(t, r, tt.method, path, tt.body)
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode[map[string]any](t, w)["message"])
			}
		})
	}
}

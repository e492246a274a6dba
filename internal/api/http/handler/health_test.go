package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pandey-i/note-taking-app/internal/mocks"
	"github.com/pandey-i/note-taking-app/internal/testutil"
)

func TestHealth(t *testing.T) {
	r, _ := newTestEngine()
	pinger := mocks.NewPinger(t)
	h := NewHealth(pinger, testutil.MakeNoopLogger())
	r.GET("/", h.Root)
	r.GET("/healthz", h.Ready)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Note Taking App API is running!", decode[map[string]any](t, w)["message"])

	pinger.On("Ping", mock.Anything).Return(nil).Once()
	w = doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	pinger.On("Ping", mock.Anything).Return(errors.New("no primary")).Once()
	w = doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unavailable", decode[map[string]any](t, w)["status"])
}

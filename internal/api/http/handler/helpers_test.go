package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpctx "github.com/pandey-i/note-taking-app/internal/api/http/context"
	"github.com/pandey-i/note-taking-app/internal/model"
)

var testUser = model.PublicUser{ID: uuid.MustParse("6f1c2a55-6a53-4a43-9a57-2d1f0f3b8c11"), Email: "a@x.com", Name: "Ann"}

func newTestEngine() (*gin.Engine, *httpctx.Manager) {
	gin.SetMode(gin.TestMode)
	return gin.New(), httpctx.NewManager()
}

// asUser stands in for the authenticate middleware.
func asUser(m *httpctx.Manager, user model.PublicUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(m.SetUserToContext(c.Request.Context(), user))
		c.Next()
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "json")

	l.Info("Auth service: user registered", "email", "a@x.com")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "Auth service: user registered", record["msg"])
	assert.Equal(t, "a@x.com", record["email"])
}

func TestNewWithWriter_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 4, "text")

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept", "component", "mailer")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "component=mailer")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "text").With("server", "http")

	l.Info("started")
	assert.Contains(t, buf.String(), "server=http")
}

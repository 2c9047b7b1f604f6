package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"document": "welcome-post", "section": "render"})
	log.Info("rendering document")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "rendering document", entry["message"])
	require.Equal(t, "welcome-post", entry["document"])
	require.Equal(t, "render", entry["section"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"document": "prompt-3"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "prompt-3", entry["document"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Fields: map[string]any{"command": "render"}})
	require.NoError(t, err)

	log.WithCorrelationID("abc").Info("rendered")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "abc", entry[CorrelationField])
	require.Equal(t, "render", entry["command"])
}

func TestLoggerGeneratesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.WithCorrelationID("").Info("hello")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	id, ok := entry[CorrelationField].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
}

func TestCorrelationIDContext(t *testing.T) {
	t.Parallel()

	ctx := ContextWithCorrelationID(context.Background(), "xyz")
	require.Equal(t, "xyz", CorrelationID(ctx))
	require.Empty(t, CorrelationID(context.Background()))
}

func TestNilAndDiscardLoggers(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.DebugErr(errors.New("x"), "x")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	})
	require.False(t, nilLogger.Enabled(zerolog.ErrorLevel))
	require.False(t, Discard().Enabled(zerolog.ErrorLevel))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

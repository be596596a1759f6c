package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewJSONIncludesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf, RunID: "run-1"})
	require.NoError(t, err)

	logger.Info("pages", "base", "proverbs", "total", 8)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "run-1", entry["run_id"])
	require.Equal(t, "proverbs", entry["base"])
	require.EqualValues(t, 8, entry["total"])
}

func TestNewGeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	require.NoError(t, err)
	logger.Info("hello")
	require.Regexp(t, `run_id=[0-9a-f-]{36}`, buf.String())
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	require.NoError(t, err)
	logger.Debug("hidden")
	require.Empty(t, buf.String())

	buf.Reset()
	logger, err = New(Options{Level: "debug", Format: "console", Writer: &buf})
	require.NoError(t, err)
	logger.Debug("shown")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "source=")
}

func TestAutoFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "auto", Writer: &buf})
	require.NoError(t, err)
	logger.Info("hello")
	require.True(t, strings.HasPrefix(buf.String(), "{"), "non-terminal writers get json, got %q", buf.String())
}

func TestNewRejectsUnknownValues(t *testing.T) {
	_, err := New(Options{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
	_, err = New(Options{Level: "trace", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
}

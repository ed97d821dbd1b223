package slogx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("json format with service attr", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Service: "marketoctl", Level: "info", Format: "json"}, &buf)
		logger.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		require.Equal(t, "hello", record["msg"])
		require.Equal(t, "marketoctl", record["service"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Level: "info", Format: "text"}, &buf)
		logger.Info("hello")
		require.True(t, strings.Contains(buf.String(), "msg=hello"))
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Level: "warn"}, &buf)
		logger.Info("dropped")
		require.Zero(t, buf.Len())
		logger.Warn("kept")
		require.NotZero(t, buf.Len())
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

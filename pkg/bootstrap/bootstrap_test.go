package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, expected := range testCases {
		assert.Equal(t, expected, toLevel(input), "level %q", input)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")

	// when
	logger.InfoContext(context.Background(), "dropped")
	logger.WarnContext(context.Background(), "kept", "ID", 42)

	// then
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, float64(42), record["ID"])
}

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/LavaJover/shvark-escrow-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escrow.log")
	log, closer := New(config.LogConfig{LogLevel: "info", LogFormat: "json", LogOutput: path, MaxSizeMB: 1})

	log.Debug("dropped")
	log.Info("escrow locked", "escrow_id", "e1")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"escrow_id":"e1"`)
	assert.NotContains(t, string(raw), "dropped")
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeoncrawl/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Environment = "production"
	var buf bytes.Buffer

	New(&buf, cfg).Info("level up", "player", "Aria", "level", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "level up", line["msg"])
	assert.Equal(t, "Aria", line["player"])
}

func TestNew_DevelopmentWritesTextAndFilters(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	l := New(&buf, cfg)

	l.Info("hidden")
	l.Warn("shown", "monster", "Goblin")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "monster=Goblin")
}

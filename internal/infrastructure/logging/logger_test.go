package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(Config{Level: tt.level})
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestProductionWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	l, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Named("http").Info("calculation failed", zap.String("kind", "DomainError"))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "calculation failed", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "http", entry["logger"])
	assert.Equal(t, "DomainError", entry["kind"])
}

func TestForSettings(t *testing.T) {
	cfg := ForSettings("", false)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg = ForSettings("", true)
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.Development)

	cfg = ForSettings("warn", true)
	assert.Equal(t, "warn", cfg.Level)
	assert.True(t, cfg.Development)

	l, err := New(ForSettings("error", true))
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.NotNil(t, NewNop().Named("x"))
}

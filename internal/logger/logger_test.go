package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"chaingen/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(config.LoggerConfig{Level: "warn", Encoding: "json"}, zapcore.AddSync(&buf))

	log.Info("hidden")
	log.Warn("shown", zap.Uint64("chainId", 1))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "timestamp")
	assert.EqualValues(t, 1, entry["chainId"])
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(config.LoggerConfig{Level: "chatty"}, zapcore.AddSync(&buf))

	log.Debug("hidden")
	log.Info("shown")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(config.LoggerConfig{Level: "info", Encoding: "console"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

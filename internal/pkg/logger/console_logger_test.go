//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/MGTheTrain/aes-core/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer

	// Create logger with custom output for testing
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	handler := slog.NewTextHandler(&buf, opts)
	logger := &ConsoleLogger{logger: slog.New(handler)}

	// Log messages at different levels
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	// Verify output contains all messages
	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	// Verify it satisfies the Logger interface and doesn't panic
	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestConsoleLogger_DebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := &ConsoleLogger{logger: slog.New(handler)}

	logger.Debug("round ", 1, " state")
	assert.Contains(t, buf.String(), "round 1 state")
	assert.True(t, logger.Enabled(config.LogLevelDebug))

	buf.Reset()
	infoLogger := &ConsoleLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))}
	infoLogger.Debug("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, infoLogger.Enabled(config.LogLevelDebug))
	assert.True(t, infoLogger.Enabled(config.LogLevelError))
}

func TestConsoleLogger_CriticalLevel(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelCritical)

	assert.False(t, logger.Enabled(config.LogLevelInfo))
	assert.False(t, logger.Enabled(config.LogLevelWarning))
	assert.True(t, logger.Enabled(config.LogLevelError))
	assert.True(t, logger.Enabled(config.LogLevelCritical))
}

package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/seimei-api/internal/config"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	log, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("hidden")
	log.Warn("shown", "component", "test")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Equal(t, log, slog.Default())
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, logger.ParseLevel(tc.name))
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		// Verify the logger was stored in the context
		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestCaptureHelpers(t *testing.T) {
	out := logger.CaptureLogs(t, func(l *slog.Logger) {
		l.Info("captured", "glyph", "郎")
	})
	assert.True(t, strings.Contains(out, "captured"))

	logBuf, log, cleanup := logger.SetupTestLogger(t, nil)
	defer cleanup()
	log.Debug("debug line", "strokes", 9)
	logger.AssertLogContains(t, logBuf, "debug line")
	logger.AssertLogField(t, logBuf, "msg", "debug line")

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(9), entries[0]["strokes"])
}

func TestNewLogCaptureContext(t *testing.T) {
	capture, cleanup := logger.NewLogCaptureContext(t)
	defer cleanup()

	logger.FromContext(capture.Context).Info("through context")
	logger.AssertLogContains(t, capture.Buffer, "through context")
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"blog-og/internal/handler/http/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "invalid", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := NewLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("LOG_LEVEL", "error")
	logger = NewTextLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_Formats(t *testing.T) {
	var jsonBuf, textBuf bytes.Buffer

	New(&jsonBuf, slog.LevelInfo, true).Info("json message", slog.String("k", "v"))
	New(&textBuf, slog.LevelInfo, false).Info("text message", slog.String("k", "v"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &entry))
	assert.Equal(t, "json message", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	assert.Contains(t, textBuf.String(), `msg="text message"`)
	assert.Contains(t, textBuf.String(), "k=v")
}

func TestNew_DebugFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, true)

	logger.Debug("this should not appear")
	logger.Info("this should appear")

	assert.NotContains(t, buf.String(), "this should not appear")
	assert.Contains(t, buf.String(), "this should appear")
}

func TestForEnvironment(t *testing.T) {
	assert.NotNil(t, ForEnvironment(true))
	assert.NotNil(t, ForEnvironment(false))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, slog.LevelInfo, true)

	ctx := requestid.WithRequestID(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	WithRequestID(ctx, base).Info("test message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", entry["request_id"])
}

func TestWithRequestID_Empty(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, slog.LevelInfo, true)

	logger := WithRequestID(context.Background(), base)
	logger.Info("test message")

	assert.Same(t, base, logger)
	assert.NotContains(t, buf.String(), "request_id")
}

func TestFromContext(t *testing.T) {
	custom := New(&bytes.Buffer{}, slog.LevelInfo, true)

	assert.Same(t, custom, FromContext(WithLogger(context.Background(), custom)))
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
	assert.Equal(t, slog.Default(),
		FromContext(context.WithValue(context.Background(), loggerContextKey, "not a logger")))
}

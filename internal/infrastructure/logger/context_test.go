package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

func TestWithContext(t *testing.T) {
	t.Run("stores and retrieves logger", func(t *testing.T) {
		logger := zap.NewNop()
		ctx := WithContext(context.Background(), logger)

		retrieved := FromContext(ctx)
		assert.Same(t, logger, retrieved)
	})

	t.Run("returns no-op logger when not set", func(t *testing.T) {
		retrieved := FromContext(context.Background())
		require.NotNil(t, retrieved)
	})
}

func TestWithRequestID(t *testing.T) {
	t.Run("enriches logger with request_id field", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		ctx, enriched := WithRequestID(context.Background(), logger, "req-123")
		enriched.Info("test message")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "req-123", entry.ContextMap()["request_id"])
		assert.Equal(t, "req-123", GetRequestID(ctx))
	})

	t.Run("context logger is the enriched one", func(t *testing.T) {
		logger := zap.NewNop()
		ctx, enriched := WithRequestID(context.Background(), logger, "req-456")
		assert.Same(t, enriched, FromContext(ctx))
	})
}

func TestWithUserID(t *testing.T) {
	t.Run("enriches logger with user_id field", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		ctx, enriched := WithUserID(context.Background(), logger, "user-789")
		enriched.Info("test message")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "user-789", entry.ContextMap()["user_id"])
		assert.Equal(t, "user-789", GetUserID(ctx))
	})
}

func TestGetRequestID(t *testing.T) {
	t.Run("returns empty string when not set", func(t *testing.T) {
		assert.Equal(t, "", GetRequestID(context.Background()))
	})
}

func TestGetUserID(t *testing.T) {
	t.Run("returns empty string when not set", func(t *testing.T) {
		assert.Equal(t, "", GetUserID(context.Background()))
	})
}

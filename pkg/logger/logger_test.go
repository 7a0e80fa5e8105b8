package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restomenu/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development logger with debug level", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, testLogger)
	})

	t.Run("production logger with default level", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Production, "")
		require.NoError(t, err)
		assert.NotNil(t, testLogger)
	})

	t.Run("invalid level returns error", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Production, "chatty")
		require.Error(t, err)
		require.ErrorIs(t, err, logger.ErrInvalidLogLevel)
		assert.Nil(t, testLogger)
	})
}

func TestContextPlumbing(t *testing.T) {
	t.Run("logger round-trips through context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)
		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, got)
	})

	t.Run("missing logger yields ErrLoggerNotFound", func(t *testing.T) {
		_, err := logger.FromContext(context.Background())
		require.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})

	t.Run("Log falls back when context is empty", func(t *testing.T) {
		got := logger.Log(context.Background())
		assert.NotNil(t, got)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("explicit request id is kept", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("empty request id is generated", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})
}

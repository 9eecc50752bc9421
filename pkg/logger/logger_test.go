package logger_test

import (
	"context"
	"matchup/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		wantErr     bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment},
		{name: "explicit level", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "invalid level", environment: logger.ProductionEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.debug, logger.IsDebug(context.Background()))
		})
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	require.Same(t, logger.Default(), logger.Get(context.Background()))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))

	logger.Info(ctx, "hello", zap.Int("n", 1))
	logger.Warn(ctx, "careful")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])
	require.EqualValues(t, 1, entries[0].ContextMap()["n"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestIsDebug(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	require.False(t, logger.IsDebug(ctx))

	core, _ = observer.New(zapcore.DebugLevel)
	ctx = logger.WithLogger(context.Background(), zap.New(core))
	require.True(t, logger.IsDebug(ctx))
}

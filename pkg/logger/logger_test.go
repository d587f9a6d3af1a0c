package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"avconsole/pkg/logger"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "default logger expected for plain context")

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.String("scanID", "s1"), zap.Int("attempt", 1))
	require.NotNil(t, logger.Get(ctx))
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()
	require.False(t, logger.IsDebug(logger.WithLogger(context.Background(), infoLogger)))
}

func TestLoggingDoesNotPanic(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug", zap.String("k", "v"))
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error", zap.Int("n", 1))
	})
}

package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("ETF_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "ETF_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("ETF_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

// FromContext returns the logger stored under ContextKey, or a new one if
// the context doesn't carry one
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(ContextKey).(*zap.SugaredLogger); ok && logger != nil {
			return logger
		}
	}
	logger := New()
	logger.Warn("no logger found in ctx - creating new one")
	return logger
}

// WithLogger stores lg on ctx
func WithLogger(ctx context.Context, lg *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, lg)
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}

package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

type requestIDKey struct{}

// Initialize sets up the global logger with the given log level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns Log annotated with the request id of ctx.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return Log.With("request_id", id)
	}
	return Log
}

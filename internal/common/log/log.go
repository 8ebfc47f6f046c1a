// Package log wraps zap with context-aware helpers so every call site can
// attach the request correlation id without threading a logger around.
package log

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type correlationKey struct{}

var base = zap.NewNop()

// Init replaces the process-wide logger. level accepts the usual zap level
// names; anything unparseable falls back to info.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	base = logger
	return nil
}

// InitForTest swaps in a no-op logger so tests stay quiet.
func InitForTest() {
	base = zap.NewNop()
}

func Sync() {
	_ = base.Sync()
}

// Logger exposes the underlying zap logger for integrations that need it.
func Logger() *zap.Logger {
	return base
}

// WithCorrelationID stores the correlation id used by every log call made
// with the returned context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

type Field = zap.Field

func String(key, value string) Field             { return zap.String(key, value) }
func Int(key string, value int) Field            { return zap.Int(key, value) }
func Int64(key string, value int64) Field        { return zap.Int64(key, value) }
func Uint64(key string, value uint64) Field      { return zap.Uint64(key, value) }
func Bool(key string, value bool) Field          { return zap.Bool(key, value) }
func Time(key string, value time.Time) Field     { return zap.Time(key, value) }
func Duration(key string, d time.Duration) Field { return zap.Duration(key, d) }
func Any(key string, value any) Field            { return zap.Any(key, value) }
func Err(err error) Field                        { return zap.Error(err) }

func withCtx(ctx context.Context, fields []Field) []Field {
	if id := CorrelationID(ctx); id != "" {
		return append(fields, zap.String("correlation_id", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	base.Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	base.Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	base.Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	base.Error(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	base.Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	base.Sugar().Infof(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	base.Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	base.Sugar().Fatalf(format, args...)
}

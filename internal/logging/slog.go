package logging

import (
	"context"
	"log/slog"
)

// SlogLogger adapts log/slog to the Logger interface.
type SlogLogger struct {
	sl *slog.Logger
}

func NewSlogLogger(sl *slog.Logger) *SlogLogger {
	return &SlogLogger{sl: sl}
}

func (l *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.sl.InfoContext(ctx, msg, args...)
}

func (l *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.sl.WarnContext(ctx, msg, args...)
}

func (l *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.sl.ErrorContext(ctx, msg, args...)
}

func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{sl: l.sl.With(args...)}
}

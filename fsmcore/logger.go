// Package fsmcore carries the support capabilities of the fsm module: the
// diagnostic Logger interface, its context plumbing, and small generic
// helpers under to/.
package fsmcore

import (
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
)

// Logger is the diagnostic sink of a machine. It is shaped after *slog.Logger
// so any slog backend fits through FromSlog; transition records are emitted
// at Debug level, recovered panics at Error.
type Logger interface {
	With(args ...any) Logger
	WithGroup(name string) Logger
	Debug(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

type slogLogger struct {
	*slog.Logger
}

// FromSlog adapts a *slog.Logger to Logger.
func FromSlog(l *slog.Logger) Logger { return &slogLogger{l} }

// NewTestLogger returns a Logger that writes through t.Log, so diagnostic
// records show up interleaved with test output and only on failure.
func NewTestLogger(t *testing.T, opt ...slogt.Option) Logger {
	return &slogLogger{slogt.New(t, opt...)}
}

func (l *slogLogger) With(args ...any) Logger { return &slogLogger{l.Logger.With(args...)} }
func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{l.Logger.WithGroup(name)}
}

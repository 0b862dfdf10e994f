package fsmcore

import "context"

type ctxKey struct{}

// TryFromContext returns the Logger carried by ctx, if any.
func TryFromContext[T Logger](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKey{}).(T)
	return v, ok
}

// FromContext returns the Logger carried by ctx, panicking if absent.
func FromContext[T Logger](ctx context.Context) T {
	return ctx.Value(ctxKey{}).(T)
}

// NewContext carries logger in the returned context, typically handed to
// Runner.Run so recovered panics have somewhere to go.
func NewContext(parent context.Context, logger Logger) context.Context {
	return context.WithValue(parent, ctxKey{}, logger)
}

package fsm

import (
	"github.com/benbjohnson/clock"

	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore"
)

// Option alters the behavior of an Instance.
type Option func(*Instance)

// WithClock replaces the wall clock, e.g. with clock.NewMock() in tests.
// The machine only ever reads the clock; it must be monotonically
// non-decreasing.
func WithClock(c clock.Clock) Option {
	return func(i *Instance) {
		i.clock = c
	}
}

// WithLogger installs the diagnostic sink. Every committed transition emits
// one Debug record; without a logger the records are suppressed.
func WithLogger(l fsmcore.Logger) Option {
	return func(i *Instance) {
		i.logger = l
	}
}

// WithAssert installs the assertion sink, called on contract violations
// (out-of-range GoTo, tick before New). The explicit error return happens
// regardless, an Instance is correct with the sink absent.
//
// Hosts that want the original halt-on-violation build can panic from the
// sink.
func WithAssert(assert func(msg string)) Option {
	return func(i *Instance) {
		i.assert = assert
	}
}

// WithID overrides the generated diagnostic ID.
func WithID(id string) Option {
	return func(i *Instance) {
		i.id = id
	}
}

package fsm

import (
	"errors"
	"fmt"
)

// Error kinds returned by Instance operations.
//
// Operations always perform their own explicit checks and return one of
// these; the assertion sink installed with WithAssert is a secondary,
// optional defense and never replaces the error return.
var (
	// ErrInvalidArgument reports a missing or unusable input: a nil
	// configuration, a configuration with zero states, or a misconfigured
	// Runner.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotInitialized reports an operation on an Instance that was never
	// built with New.
	ErrNotInitialized = errors.New("fsm not initialized")

	// ErrOutOfRange reports a requested state index outside the configured
	// state table.
	ErrOutOfRange = errors.New("state out of range")
)

func errInvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func errOutOfRange(state, numStates int) error {
	return fmt.Errorf("%w: state %d, have %d states", ErrOutOfRange, state, numStates)
}

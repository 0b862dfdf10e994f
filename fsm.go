// Package fsm is a finite-state-machine execution engine for cyclic,
// periodically-polled control software.
//
// A machine is described by a caller-owned Config (an ordered table of
// states with optional entry / activity / exit callbacks) and driven by
// calling Tick once per scheduling period, either directly or through a
// Runner. On every tick the machine decides whether it is entering its
// initial state, transitioning between two states, or remaining where it
// is, and dispatches the right callbacks in the right order.
package fsm

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore"
	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore/to"
)

// DurationLimit is the ceiling both Duration (milliseconds) and LoopCount
// (ticks) saturate at instead of wrapping.
const DurationLimit uint32 = 0x1FFFFFFF

// Instance is one independently-running machine.
//
// An Instance is single-threaded and non-reentrant: exactly one call site
// must drive it, and Tick must run to completion before the next call on the
// same Instance. Calling Tick or the mutators from multiple goroutines on
// one Instance is undefined, there is no locking because there is no
// concurrent access by design.
type Instance struct {
	cfg *Config
	id  string

	cur, next  int
	initial    bool // true until the very first transition is committed
	firstEntry bool
	duration   uint32 // ms spent in cur, saturates at DurationLimit
	loops      uint32 // ticks spent in cur, saturates at DurationLimit
	lastSample uint32 // last observed clock value, ms, wraps at 2^32
	data       Data
	ready      bool

	clock  clock.Clock
	logger fsmcore.Logger
	assert func(msg string)
}

// New builds an Instance bound to cfg.
//
// cfg must declare at least one state and must outlive the Instance. No
// callbacks run here: the initial state is entered on the first Tick, which
// targets state 0 unless GoTo is called before it.
func New(cfg *Config, opts ...Option) (*Instance, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	inst := &Instance{
		cfg: cfg,
		id:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	if inst.clock == nil {
		inst.clock = clock.New()
	}
	inst.reset()
	inst.ready = true
	return inst, nil
}

// reset seeds the initial field values. Shared by New and Reset so there is
// a single source of truth for the initial condition.
func (i *Instance) reset() {
	i.cur = 0
	i.next = 0
	i.initial = true
	i.firstEntry = false
	i.duration = 0
	i.loops = 0
	i.lastSample = 0
}

// Reset restores the Instance to its initial condition in place: state 0
// pending, zero duration, initial entry rearmed. No exit / entry / activity
// callback is invoked, and the shared data slot is preserved.
func (i *Instance) Reset() error {
	if !i.ready {
		return ErrNotInitialized
	}
	i.reset()
	return nil
}

// GoTo requests state as the next state. The request takes effect on the
// next Tick; no callback runs here. Requesting the current state is allowed
// and yields the steady-state path.
func (i *Instance) GoTo(state int) error {
	if !i.ready {
		return ErrNotInitialized
	}
	if state < 0 || state >= len(i.cfg.States) {
		i.failf("requested state %d outside [0, %d)", state, len(i.cfg.States))
		return errOutOfRange(state, len(i.cfg.States))
	}
	i.next = state
	return nil
}

// Current returns the index of the current state.
func (i *Instance) Current() int { return i.cur }

// Requested returns the index of the pending next state. It equals Current
// unless a GoTo request has not been committed yet.
func (i *Instance) Requested() int { return i.next }

// StateName returns the display name of state, or its index if unnamed.
func (i *Instance) StateName(state int) string { return i.cfg.stateName(state) }

// Duration returns the accumulated time, in milliseconds, spent continuously
// in the current state. It resets to 0 on every state entry and saturates at
// DurationLimit.
func (i *Instance) Duration() uint32 { return i.duration }

// LoopCount returns the number of ticks spent continuously in the current
// state, the entry tick excluded. It resets to 0 on every state entry and
// saturates at DurationLimit.
func (i *Instance) LoopCount() uint32 { return i.loops }

// ResetDuration restarts in-state time measurement from now: Duration and
// LoopCount drop to 0 and subsequent accumulation is measured from the
// current clock value, not from the last state entry.
func (i *Instance) ResetDuration() error {
	if !i.ready {
		return ErrNotInitialized
	}
	i.duration = 0
	i.loops = 0
	i.lastSample = i.nowMs()
	return nil
}

// FirstEntry reports whether the just-completed tick was the first tick in
// the current state. It is true for exactly one tick per state change,
// including the initial entry.
func (i *Instance) FirstEntry() bool { return i.firstEntry }

// SharedData returns the shared data slot verbatim.
func (i *Instance) SharedData() Data { return i.data }

// SetSharedData stores the shared data slot verbatim.
func (i *Instance) SetSharedData(d Data) { i.data = d }

// IsInitialized reports whether the Instance was built with New.
func (i *Instance) IsInitialized() bool { return i != nil && i.ready }

// ID returns the diagnostic identity of the Instance, a fresh UUID unless
// overridden with WithID.
func (i *Instance) ID() string { return i.id }

// name is the machine's diagnostic name: the Config name, or the ID for
// unnamed configs.
func (i *Instance) name() string { return to.Coalesce(i.cfg.Name, i.id) }

// nowMs samples the clock as a 32-bit millisecond counter. The truncation
// is deliberate: elapsed time is computed with unsigned subtraction so the
// counter may wrap without corrupting deltas.
func (i *Instance) nowMs() uint32 {
	return uint32(i.clock.Now().UnixMilli())
}

func (i *Instance) failf(format string, args ...any) {
	if i.assert != nil {
		i.assert(fmt.Sprintf(format, args...))
	}
}

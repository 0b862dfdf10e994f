package fsm

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"

	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore"
)

// Runner drives one Instance periodically: one Tick per Period until the
// context is done.
//
//	r := &fsm.Runner{Instance: inst, Period: 10 * time.Millisecond}
//	err := r.Run(ctx)
//
// The Runner is the single call site of its Instance; do not call Tick (or
// the mutators, outside callbacks) while Run is active.
type Runner struct {
	Instance  *Instance
	Period    time.Duration   // scheduling period, must be > 0
	DontPanic bool            // recover callback panics and keep ticking
	BackOff   backoff.BackOff // delay before resuming after a recovered panic
	Clock     clock.Clock     // clock for the period ticker and backoff sleeps
}

// Run ticks the Instance once per Period until ctx is done, then returns
// ctx.Err(). A Tick error stops the loop.
//
// With DontPanic set, a panicking callback does not take the loop down: the
// panic is recovered, reported to the logger carried in ctx (if any), and
// ticking resumes after the next BackOff interval. Exponential backoff is
// used unless BackOff is set; a BackOff answering backoff.Stop ends the run
// with an error. A clean tick resets the backoff.
func (r *Runner) Run(ctx context.Context) error {
	if r.Instance == nil {
		return errInvalidArgumentf("runner has no instance")
	}
	if r.Period <= 0 {
		return errInvalidArgumentf("runner period %v", r.Period)
	}
	if r.Clock == nil {
		r.Clock = clock.New()
	}
	if r.BackOff == nil {
		r.BackOff = backoff.NewExponentialBackOff()
	}
	ticker := r.Clock.Ticker(r.Period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			recovered, err := r.tick(ctx)
			if err != nil {
				return err
			}
			if !recovered {
				r.BackOff.Reset()
				continue
			}
			next := r.BackOff.NextBackOff()
			if next == backoff.Stop {
				return fmt.Errorf("%s: giving up after recovered panic", r.Instance.name())
			}
			r.Clock.Sleep(next)
		}
	}
}

// tick runs one Tick, recovering a callback panic when DontPanic is set.
func (r *Runner) tick(ctx context.Context) (recovered bool, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if !r.DontPanic {
			panic(p)
		}
		recovered = true
		if l, ok := fsmcore.TryFromContext[fsmcore.Logger](ctx); ok {
			l.Error("recovered callback panic",
				"fsm", r.Instance.name(),
				"id", r.Instance.ID(),
				"state", r.Instance.StateName(r.Instance.Current()),
				"panic", p,
			)
		}
	}()
	return false, r.Instance.Tick()
}

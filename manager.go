package fsm

// Tick runs one period of the machine. It must be called once per scheduling
// period by exactly one call site, and must return before the next call on
// the same Instance.
//
// Each tick resolves to one of three cases:
//
//  1. initial entry:  the first tick ever (or the first after Reset) enters
//     the requested state — OnEntry, then OnActivity, no OnExit;
//  2. transition:     a pending GoTo commits — OnExit of the old state,
//     OnEntry of the new one, then OnActivity of the new one;
//  3. steady state:   no pending request — the elapsed clock delta is added
//     to Duration, then OnActivity runs.
//
// A GoTo issued from inside OnEntry is not resolved within the same tick:
// the entry's own target is committed, OnActivity runs against it, and the
// nested request is picked up on the following tick.
func (i *Instance) Tick() error {
	if i == nil {
		return errInvalidArgumentf("nil instance")
	}
	if !i.ready {
		i.failf("tick on uninitialized instance")
		return ErrNotInitialized
	}

	switch {
	case i.initial:
		i.logTransition("initial", i.next)
		i.initial = false
		i.enter(i.next)

	case i.cur != i.next:
		i.logTransition(i.cfg.stateName(i.cur), i.next)
		if fn := i.cfg.States[i.cur].OnExit; fn != nil {
			fn(i)
		}
		i.enter(i.next)

	default:
		i.firstEntry = false
		now := i.nowMs()
		i.duration = saturate(uint64(i.duration) + uint64(now-i.lastSample))
		i.lastSample = now
		i.loops = saturate(uint64(i.loops) + 1)
	}

	if fn := i.cfg.States[i.cur].OnActivity; fn != nil {
		fn(i)
	}
	return nil
}

// enter commits target as the current state: duration restarts from now,
// OnEntry runs, then the commit. The commit happens after OnEntry so that a
// nested GoTo only changes the pending request, never this tick's target.
func (i *Instance) enter(target int) {
	i.lastSample = i.nowMs()
	i.duration = 0
	i.loops = 0
	if fn := i.cfg.States[target].OnEntry; fn != nil {
		fn(i)
	}
	i.cur = target
	i.firstEntry = true
}

// logTransition emits the diagnostic transition record. A nil logger only
// suppresses output, control flow is identical either way.
func (i *Instance) logTransition(from string, to int) {
	if i.logger == nil {
		return
	}
	i.logger.Debug("state transition",
		"fsm", i.name(),
		"id", i.id,
		"from", from,
		"to", i.cfg.stateName(to),
	)
}

// saturate clamps v at DurationLimit. v is accumulated in 64 bits so the
// clamp happens before any 32-bit wrap.
func saturate(v uint64) uint32 {
	if v >= uint64(DurationLimit) {
		return DurationLimit
	}
	return uint32(v)
}

package fsm_test

import (
	"fmt"
	"time"

	fsm "github.com/GeneralEmbeddedCLibraries/fsm"
	"github.com/benbjohnson/clock"
)

// Examples are a good place to ramp-up and have a quick look at this package's features.
//
// # Config, Instance and Tick
//
// A machine is described by a Config: an ordered table of states, each with
// optional OnEntry / OnActivity / OnExit callbacks. New binds the Config to
// an Instance, and the host drives the Instance by calling Tick once per
// scheduling period.
//
// On each tick the Instance either enters its initial state, commits a
// pending GoTo request (OnExit of the old state, OnEntry of the new one),
// or stays put and accumulates Duration, then it always runs OnActivity of
// the current state.
//
// Below is a blinker: each state hands control to the other after 100 ms
// in-state, and the shared data slot counts completed blinks.
func ExampleInstance() {
	const (
		Off = iota
		On
	)
	mck := clock.NewMock()
	cfg := &fsm.Config{
		Name: "blink",
		States: []fsm.State{
			Off: {
				Name: "off",
				OnActivity: func(i *fsm.Instance) {
					if i.Duration() >= 100 {
						_ = i.GoTo(On)
					}
				},
			},
			On: {
				Name: "on",
				OnEntry: func(i *fsm.Instance) {
					d := i.SharedData()
					d.SetU32(d.U32() + 1)
					i.SetSharedData(d)
					fmt.Printf("blink #%d\n", d.U32())
				},
				OnActivity: func(i *fsm.Instance) {
					if i.Duration() >= 100 {
						_ = i.GoTo(Off)
					}
				},
			},
		},
	}

	inst, _ := fsm.New(cfg, fsm.WithClock(mck))

	// the host loop: one Tick per 50 ms scheduling period
	for tick := 0; tick < 11; tick++ {
		_ = inst.Tick()
		mck.Add(50 * time.Millisecond)
	}
	fmt.Println("blinks:", inst.SharedData().U32())
	// Output:
	// blink #1
	// blink #2
	// blinks: 2
}

package fsm

import (
	"strconv"

	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore/to"
)

// State describes one state of a machine: its optional callbacks and an
// optional display name used in transition records.
//
// All callbacks receive the owning Instance, so they may query Duration(),
// FirstEntry(), read / write the shared data slot, or request the next state
// with GoTo().
type State struct {
	Name       string         // display name for diagnostics, the state index is used when empty
	OnEntry    func(*Instance) // runs once when the state becomes current
	OnActivity func(*Instance) // runs on every tick while the state is current, including the entry tick
	OnExit     func(*Instance) // runs once when the machine leaves the state
}

// Config is the state table of a machine.
//
// Config is owned by the caller and bound to an Instance at New. It must
// outlive the Instance and must not be mutated afterwards. The Instance never
// writes to it, so multiple Instances may share one Config.
type Config struct {
	Name   string  // machine name for diagnostics
	States []State // ordered state table, state indices are positions in this slice
}

func (c *Config) validate() error {
	if c == nil {
		return errInvalidArgumentf("nil config")
	}
	if len(c.States) == 0 {
		return errInvalidArgumentf("config %q declares zero states", c.Name)
	}
	return nil
}

// stateName formats a state for transition records: its Name if set,
// its index otherwise.
func (c *Config) stateName(state int) string {
	if state < 0 || state >= len(c.States) {
		return strconv.Itoa(state)
	}
	return to.Coalesce(c.States[state].Name, strconv.Itoa(state))
}

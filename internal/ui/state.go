package ui

import "sync/atomic"

// ControlState is the busy state of one action control.
type ControlState int32

const (
	StateIdle ControlState = iota
	StateBusy
)

func (s ControlState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// control guards one action so that at most one run is in flight. It plays
// the role of the disabled attribute on the control that triggers the action.
type control struct {
	state atomic.Int32
}

// acquire moves the control from idle to busy. It reports false if a run is
// already in flight.
func (c *control) acquire() bool {
	return c.state.CompareAndSwap(int32(StateIdle), int32(StateBusy))
}

func (c *control) release() {
	c.state.Store(int32(StateIdle))
}

func (c *control) State() ControlState {
	return ControlState(c.state.Load())
}

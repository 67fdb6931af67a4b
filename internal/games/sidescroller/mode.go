package sidescroller

import (
	"errors"
	"fmt"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModePaused
	ModeInteracting
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeInteracting:
		return "interacting"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned for transitions the machine does not allow.
var ErrInvalidTransition = errors.New("invalid mode transition")

var transitions = map[Mode][]Mode{
	ModeStart:       {ModePlaying},
	ModePlaying:     {ModePaused, ModeInteracting, ModeEnded},
	ModePaused:      {ModePlaying},
	ModeInteracting: {ModePlaying},
}

// Delay is a countdown advanced by tick deltas. It replaces sleeping on the
// simulation goroutine.
type Delay struct {
	remaining float64
	armed     bool
}

// Arm starts the countdown.
func (d *Delay) Arm(seconds float64) {
	d.remaining = seconds
	d.armed = true
}

// Armed reports whether the delay is counting down.
func (d *Delay) Armed() bool {
	return d.armed
}

// Cancel disarms the delay.
func (d *Delay) Cancel() {
	d.armed = false
	d.remaining = 0
}

// Advance counts down by dt and reports whether the delay fired on this call.
func (d *Delay) Advance(dt float64) bool {
	if !d.armed {
		return false
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	d.armed = false
	return true
}

// Machine is the session state machine. Transitions are either immediate or
// scheduled after a delay measured in simulation time.
type Machine struct {
	mode    Mode
	pending Mode
	delay   Delay
}

// NewMachine creates a machine in ModeStart.
func NewMachine() *Machine {
	return &Machine{mode: ModeStart}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Suspended reports whether tick-driven simulation is halted.
func (m *Machine) Suspended() bool {
	return m.mode != ModePlaying
}

// Pending returns the scheduled target mode, if any.
func (m *Machine) Pending() (Mode, bool) {
	return m.pending, m.delay.Armed()
}

// CanTransition reports whether to is reachable from the current mode.
func (m *Machine) CanTransition(to Mode) bool {
	for _, allowed := range transitions[m.mode] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition switches to the target mode immediately, cancelling any
// scheduled transition.
func (m *Machine) Transition(to Mode) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.mode, to)
	}
	m.delay.Cancel()
	m.mode = to
	return nil
}

// Schedule arranges a transition after delay seconds of Advance calls.
// A non-positive delay transitions immediately.
func (m *Machine) Schedule(to Mode, delay float64) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.mode, to)
	}
	if delay <= 0 {
		return m.Transition(to)
	}
	m.pending = to
	m.delay.Arm(delay)
	return nil
}

// Advance moves scheduled transitions forward and reports whether the mode
// changed.
func (m *Machine) Advance(dt float64) bool {
	if !m.delay.Advance(dt) {
		return false
	}
	m.mode = m.pending
	return true
}

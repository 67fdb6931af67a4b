package sidescroller

import (
	"errors"
	"testing"
)

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []Mode
		ok   bool
	}{
		{"start to playing", []Mode{ModePlaying}, true},
		{"pause and resume", []Mode{ModePlaying, ModePaused, ModePlaying}, true},
		{"interact and back", []Mode{ModePlaying, ModeInteracting, ModePlaying}, true},
		{"play to end", []Mode{ModePlaying, ModeEnded}, true},
		{"start to paused", []Mode{ModePaused}, false},
		{"paused to ended", []Mode{ModePlaying, ModePaused, ModeEnded}, false},
		{"interacting to paused", []Mode{ModePlaying, ModeInteracting, ModePaused}, false},
		{"ended is terminal", []Mode{ModePlaying, ModeEnded, ModePlaying}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			var err error
			for _, to := range tt.path {
				if err = m.Transition(to); err != nil {
					break
				}
			}
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestMachineRejectKeepsMode(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(ModeEnded); err == nil {
		t.Fatal("expected error")
	}
	if m.Mode() != ModeStart {
		t.Errorf("expected mode to stay start, got %s", m.Mode())
	}
}

func TestMachineScheduledTransition(t *testing.T) {
	m := NewMachine()
	if err := m.Schedule(ModePlaying, 0.75); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if to, ok := m.Pending(); !ok || to != ModePlaying {
		t.Fatalf("expected pending playing, got %s %v", to, ok)
	}

	if m.Advance(0.5) {
		t.Error("expected no transition before the delay elapses")
	}
	if m.Mode() != ModeStart || !m.Suspended() {
		t.Errorf("expected suspended start mode, got %s", m.Mode())
	}

	if !m.Advance(0.25) {
		t.Error("expected transition once the delay elapses")
	}
	if m.Mode() != ModePlaying || m.Suspended() {
		t.Errorf("expected playing, got %s", m.Mode())
	}
	if _, ok := m.Pending(); ok {
		t.Error("expected nothing pending after the transition")
	}
}

func TestMachineScheduleImmediate(t *testing.T) {
	m := NewMachine()
	if err := m.Schedule(ModePlaying, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Mode() != ModePlaying {
		t.Errorf("expected immediate transition, got %s", m.Mode())
	}
}

func TestMachineTransitionCancelsSchedule(t *testing.T) {
	m := NewMachine()
	_ = m.Transition(ModePlaying)
	_ = m.Schedule(ModeEnded, 1)

	if err := m.Transition(ModePaused); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Advance(5) {
		t.Error("expected cancelled schedule not to fire")
	}
	if m.Mode() != ModePaused {
		t.Errorf("expected paused, got %s", m.Mode())
	}
}

func TestDelay(t *testing.T) {
	var d Delay
	if d.Advance(1) {
		t.Error("expected unarmed delay never to fire")
	}

	d.Arm(0.5)
	if d.Advance(0.25) {
		t.Error("expected no fire halfway")
	}
	if !d.Advance(0.25) {
		t.Error("expected fire at the deadline")
	}
	if d.Armed() || d.Advance(1) {
		t.Error("expected delay to fire once")
	}
}

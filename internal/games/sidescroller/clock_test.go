package sidescroller

import (
	"math"
	"testing"
)

func TestClockInvariant(t *testing.T) {
	c := NewSessionClock(600)
	for i := 0; i < 600; i++ {
		c.Tick(1.0 / 60)
		if math.Abs(c.Remaining()+c.Elapsed()-600) > 1e-9 {
			t.Fatalf("tick %d: remaining %v + elapsed %v != 600", i, c.Remaining(), c.Elapsed())
		}
	}
}

func TestClockDisplay(t *testing.T) {
	c := NewSessionClock(600)
	if got := c.Display(); got != "Time: 10:00" {
		t.Errorf("expected initial display Time: 10:00, got %q", got)
	}

	c.Tick(0.5)
	if got := c.Display(); got != "Time: 09:59" {
		t.Errorf("expected Time: 09:59 after half a second, got %q", got)
	}
	if got := c.ElapsedDisplay(); got != "00:00" {
		t.Errorf("expected elapsed 00:00, got %q", got)
	}
}

func TestClockExpiry(t *testing.T) {
	c := NewSessionClock(600)

	c.Tick(600)
	if c.Expired() {
		t.Error("expected session still running at exactly zero remaining")
	}
	if got := c.Display(); got != "Time: 00:00" {
		t.Errorf("expected Time: 00:00, got %q", got)
	}

	c.Tick(0.25)
	if !c.Expired() {
		t.Error("expected session to expire once elapsed exceeds the length")
	}
	if c.Remaining() >= 0 {
		t.Errorf("expected negative remaining, got %v", c.Remaining())
	}
	if got := c.Display(); got != "Time: 00:00" {
		t.Errorf("expected display clamped at Time: 00:00, got %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{600, "10:00"},
		{599.9, "09:59"},
		{61, "01:01"},
		{9, "00:09"},
		{0, "00:00"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestClockNegativeTickPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative dt")
		}
	}()
	NewSessionClock(600).Tick(-1)
}

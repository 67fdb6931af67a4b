package sidescroller

import (
	"fmt"
	"math"
)

// SessionClock counts a session down. Only elapsed time is stored, so the
// remaining time and the elapsed time always add up to the session length.
type SessionClock struct {
	length  float64
	elapsed float64
}

// NewSessionClock creates a clock for a session of the given length in
// seconds.
func NewSessionClock(length float64) *SessionClock {
	return &SessionClock{length: length}
}

// Tick advances the clock by dt seconds. A negative or NaN dt is a bug in the
// frame driver and panics.
func (c *SessionClock) Tick(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		panic(fmt.Sprintf("sidescroller: invalid tick delta %v", dt))
	}
	c.elapsed += dt
}

// Length returns the configured session length.
func (c *SessionClock) Length() float64 {
	return c.length
}

// Elapsed returns the seconds played so far.
func (c *SessionClock) Elapsed() float64 {
	return c.elapsed
}

// Remaining returns the countdown value. It goes negative once the session
// has run over.
func (c *SessionClock) Remaining() float64 {
	return c.length - c.elapsed
}

// Expired reports whether the session is over.
func (c *SessionClock) Expired() bool {
	return c.elapsed > c.length
}

// Display returns the countdown HUD text.
func (c *SessionClock) Display() string {
	return "Time: " + FormatClock(c.Remaining())
}

// FormatClock renders whole seconds as zero-padded MM:SS, clamped at 00:00.
func FormatClock(seconds float64) string {
	s := int(seconds)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// ElapsedDisplay returns the elapsed time as MM:SS.
func (c *SessionClock) ElapsedDisplay() string {
	return FormatClock(c.elapsed)
}

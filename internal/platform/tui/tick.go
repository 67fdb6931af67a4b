// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ticking/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures the time between ticks. tea.Tick drifts and a
// suspended terminal can stall the loop for seconds, so deltas are capped.
type frameClock struct {
	last    time.Time
	nominal time.Duration // Used for the first tick
	max     time.Duration
}

func newFrameClock(tickRate int, max time.Duration) frameClock {
	return frameClock{
		nominal: time.Second / time.Duration(tickRate),
		max:     max,
	}
}

// Delta returns the seconds since the previous tick.
func (c *frameClock) Delta(now time.Time) float64 {
	d := c.nominal
	if !c.last.IsZero() {
		d = now.Sub(c.last)
	}
	c.last = now

	if d < 0 {
		d = 0
	}
	if c.max > 0 && d > c.max {
		d = c.max
	}
	return d.Seconds()
}

// holdTracker synthesizes direction releases. Terminals only report key
// presses; a held key arrives as auto-repeated presses, so a direction counts
// as released once no repeat arrived for timeout.
type holdTracker struct {
	timeout time.Duration
	dir     core.Action // ActionLeft, ActionRight or ActionNone
	last    time.Time
}

// Press records a direction press or auto-repeat.
func (h *holdTracker) Press(dir core.Action, now time.Time) {
	h.dir = dir
	h.last = now
}

// Expire returns the release due at now, or ActionNone.
func (h *holdTracker) Expire(now time.Time) core.Action {
	if h.dir == core.ActionNone || now.Sub(h.last) < h.timeout {
		return core.ActionNone
	}
	release := core.ActionReleaseRight
	if h.dir == core.ActionLeft {
		release = core.ActionReleaseLeft
	}
	h.dir = core.ActionNone
	return release
}

// Reset forgets the held direction.
func (h *holdTracker) Reset() {
	h.dir = core.ActionNone
}

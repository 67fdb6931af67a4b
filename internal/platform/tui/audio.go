package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ticking/internal/core"
)

// AudioSink plays the sound cues a game raises. Terminals have no mixer, so
// sinks degrade cues to whatever the output can do.
type AudioSink interface {
	Play(cue core.SoundCue)
}

// LogSink records cues in the debug log.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink logging to logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Play logs the cue.
func (s *LogSink) Play(cue core.SoundCue) {
	s.logger.Debug("sound",
		"kind", cue.Kind,
		"name", cue.Name,
		"volume", cue.Volume,
	)
}

// BellSink rings the terminal bell for sound effects and forwards every cue
// to next. Music has no bell equivalent.
type BellSink struct {
	w    io.Writer
	next AudioSink
}

// NewBellSink creates a sink writing BEL to w. next may be nil.
func NewBellSink(w io.Writer, next AudioSink) *BellSink {
	return &BellSink{w: w, next: next}
}

// Play rings for effects.
func (s *BellSink) Play(cue core.SoundCue) {
	if cue.Kind == core.SoundEffect && cue.Volume > 0 {
		//nolint:errcheck // A missed bell is harmless
		io.WriteString(s.w, "\a")
	}
	if s.next != nil {
		s.next.Play(cue)
	}
}

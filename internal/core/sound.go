package core

// SoundKind distinguishes streamed music from one-shot effects.
type SoundKind int

const (
	SoundMusic SoundKind = iota
	SoundEffect
)

// String returns a human-readable name for the kind.
func (k SoundKind) String() string {
	switch k {
	case SoundMusic:
		return "music"
	case SoundEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// SoundCue is a fire-and-forget play request. Playback is never synchronized
// with the simulation.
type SoundCue struct {
	Kind   SoundKind
	Index  int     // Track index within the kind's track list
	Name   string  // Track name, for sinks that cannot play audio
	Volume float64 // 0.0 - 1.0
}

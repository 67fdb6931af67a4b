package core

// RuntimeConfig contains settings the platform passes to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for decorative world generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the session has ended
	Paused   bool   // Whether the simulation is suspended by the player
	Mode     string // Name of the current game mode
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Sounds []SoundCue // Play requests raised during this tick
}

package sidescroller

// Snapshot captures the session state for determinism testing and the
// headless simulator.
type Snapshot struct {
	Tick       int
	Mode       string
	X, Y       float64
	VX, VY     float64
	Grounded   bool
	ViewLeft   int
	ViewBottom int
	Remaining  float64
	Score      int
	Prompt     string
	GameOver   bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	left, bottom := g.camera.Viewport()
	return Snapshot{
		Tick:       g.tickCount,
		Mode:       g.machine.Mode().String(),
		X:          g.player.X,
		Y:          g.player.Y,
		VX:         g.player.VX,
		VY:         g.player.VY,
		Grounded:   g.player.Grounded,
		ViewLeft:   left,
		ViewBottom: bottom,
		Remaining:  g.clock.Remaining(),
		Score:      g.Score(),
		Prompt:     g.Prompt(),
		GameOver:   g.gameOver,
	}
}

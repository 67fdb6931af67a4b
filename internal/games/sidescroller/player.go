package sidescroller

import "github.com/vovakirdan/ticking/internal/core"

// Player is the simulated character. X and Y are the sprite center.
type Player struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Stop zeroes both velocity components.
func (p *Player) Stop() {
	p.VX = 0
	p.VY = 0
}

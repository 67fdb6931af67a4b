package sidescroller

import (
	"math"

	"github.com/vovakirdan/ticking/internal/config"
)

// Physics advances the player against gravity and static platforms.
type Physics struct {
	Gravity      float64
	MaxFallSpeed float64
	GroundProbe  float64
	JumpSpeed    float64
}

// NewPhysics creates the physics step from configuration.
func NewPhysics(ph config.PhysicsConfig, jumpSpeed float64) Physics {
	return Physics{
		Gravity:      ph.Gravity,
		MaxFallSpeed: ph.MaxFallSpeed,
		GroundProbe:  ph.GroundProbe,
		JumpSpeed:    jumpSpeed,
	}
}

// Jump launches the player if grounded and reports whether it did.
func (ph Physics) Jump(p *Player) bool {
	if !p.Grounded {
		return false
	}
	p.VY = ph.JumpSpeed
	p.Grounded = false
	return true
}

// Step advances the player by one tick.
//
// Gravity is applied first, then the player moves and is resolved one axis at
// a time: vertical, then horizontal. On each axis the nearest surface wins:
// a falling player lands on the highest overlapped top, a rising one stops
// under the lowest overlapped bottom, and a sideways move stops at the
// closest facing edge. A falling player whose sideways move clips the top
// corner of a platform lands on it when that is the smaller correction. Any
// overlap left over is pushed out along the minimum
// translation vector. Grounded is re-derived at the end by probing below the
// feet.
func (ph Physics) Step(p *Player, platforms []Platform) {
	p.VY -= ph.Gravity
	if p.VY < -ph.MaxFallSpeed {
		p.VY = -ph.MaxFallSpeed
	}

	p.Y += p.VY
	if p.VY != 0 {
		ph.resolveVertical(p, platforms)
	}

	p.X += p.VX
	if p.VX != 0 {
		ph.landOnCorner(p, platforms)
		ph.resolveHorizontal(p, platforms)
	}

	ph.pushOut(p, platforms)
	p.Grounded = ph.Grounded(*p, platforms)
}

// Grounded reports whether a platform lies within GroundProbe below the
// player's feet.
func (ph Physics) Grounded(p Player, platforms []Platform) bool {
	probe := p.Box().Translate(0, -ph.GroundProbe)
	for _, pl := range platforms {
		if probe.Intersects(pl.Box) {
			return true
		}
	}
	return false
}

func (ph Physics) resolveVertical(p *Player, platforms []Platform) {
	box := p.Box()
	hit := false
	surface := math.Inf(-1)
	if p.VY > 0 {
		surface = math.Inf(1)
	}

	for _, pl := range platforms {
		if !box.Intersects(pl.Box) {
			continue
		}
		hit = true
		if p.VY < 0 {
			surface = math.Max(surface, pl.Box.Top())
		} else {
			surface = math.Min(surface, pl.Box.Bottom())
		}
	}
	if !hit {
		return
	}

	if p.VY < 0 {
		p.Y = surface + p.H/2
	} else {
		p.Y = surface - p.H/2
	}
	p.VY = 0
}

// landOnCorner handles overlaps the vertical pass could not see because they
// only appear after the x move. While falling, a platform whose top is
// penetrated no deeper than its facing side is landed on; ties go to landing.
func (ph Physics) landOnCorner(p *Player, platforms []Platform) {
	if p.VY >= 0 {
		return
	}
	box := p.Box()
	top := math.Inf(-1)
	for _, pl := range platforms {
		if !box.Intersects(pl.Box) {
			continue
		}
		up := pl.Box.Top() - box.Bottom()
		side := box.Right() - pl.Box.Left()
		if p.VX < 0 {
			side = pl.Box.Right() - box.Left()
		}
		if up <= side {
			top = math.Max(top, pl.Box.Top())
		}
	}
	if math.IsInf(top, -1) {
		return
	}
	p.Y = top + p.H/2
	p.VY = 0
}

func (ph Physics) resolveHorizontal(p *Player, platforms []Platform) {
	box := p.Box()
	hit := false
	edge := math.Inf(1)
	if p.VX < 0 {
		edge = math.Inf(-1)
	}

	for _, pl := range platforms {
		if !box.Intersects(pl.Box) {
			continue
		}
		hit = true
		if p.VX > 0 {
			edge = math.Min(edge, pl.Box.Left())
		} else {
			edge = math.Max(edge, pl.Box.Right())
		}
	}
	if !hit {
		return
	}

	if p.VX > 0 {
		p.X = edge - p.W/2
	} else {
		p.X = edge + p.W/2
	}
	p.VX = 0
}

// pushOut resolves overlaps the sweeps could not, such as spawning inside a
// platform. The smallest correction is applied first and the remaining
// overlaps are re-checked, at most once per platform.
func (ph Physics) pushOut(p *Player, platforms []Platform) {
	for range platforms {
		box := p.Box()
		var bestX, bestY float64
		best := math.Inf(1)

		for _, pl := range platforms {
			dx, dy := box.Penetration(pl.Box)
			if dx == 0 && dy == 0 {
				continue
			}
			if d := math.Abs(dx) + math.Abs(dy); d < best {
				best, bestX, bestY = d, dx, dy
			}
		}
		if math.IsInf(best, 1) {
			return
		}

		p.X += bestX
		p.Y += bestY
		if (bestY > 0 && p.VY < 0) || (bestY < 0 && p.VY > 0) {
			p.VY = 0
		}
		if bestX != 0 {
			p.VX = 0
		}
	}
}

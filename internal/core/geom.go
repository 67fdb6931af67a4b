// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It has no external dependencies (no
// Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells. Y grows downward.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Box is an axis-aligned box in world pixels, stored by its center.
// World Y grows upward, so Top > Bottom.
type Box struct {
	CX, CY float64 // Center
	W, H   float64
}

// NewBox creates a box centered on (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.W/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY - b.H/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY + b.H/2 }

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.CX += dx
	b.CY += dy
	return b
}

// Intersects reports whether the interiors of two boxes overlap.
// Touching edges do not count, so a box resting on a platform is not
// overlapping it.
func (b Box) Intersects(other Box) bool {
	if b.Right() <= other.Left() || other.Right() <= b.Left() {
		return false
	}
	if b.Top() <= other.Bottom() || other.Top() <= b.Bottom() {
		return false
	}
	return true
}

// Penetration returns the minimum translation that moves b out of other.
// Exactly one of the components is non-zero when the boxes overlap; both are
// zero otherwise. Ties prefer the vertical axis.
func (b Box) Penetration(other Box) (dx, dy float64) {
	if !b.Intersects(other) {
		return 0, 0
	}

	pushLeft := other.Left() - b.Right()  // negative
	pushRight := other.Right() - b.Left() // positive
	pushDown := other.Bottom() - b.Top()  // negative
	pushUp := other.Top() - b.Bottom()    // positive

	dx = pushRight
	if -pushLeft < pushRight {
		dx = pushLeft
	}
	dy = pushUp
	if -pushDown < pushUp {
		dy = pushDown
	}

	if math.Abs(dy) <= math.Abs(dx) {
		return 0, dy
	}
	return dx, 0
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

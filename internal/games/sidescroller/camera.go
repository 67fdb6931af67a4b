package sidescroller

import (
	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
)

// Camera tracks the bottom-left world coordinate of the visible window.
type Camera struct {
	width   float64
	height  float64
	margins config.ViewportConfig

	viewLeft   int
	viewBottom int
}

// NewCamera creates a camera for a width x height window starting at the
// world origin.
func NewCamera(screen config.ScreenConfig, margins config.ViewportConfig) *Camera {
	return &Camera{
		width:   screen.Width,
		height:  screen.Height,
		margins: margins,
	}
}

// Viewport returns the current (view_left, view_bottom).
func (c *Camera) Viewport() (left, bottom int) {
	return c.viewLeft, c.viewBottom
}

// Size returns the window size in world pixels.
func (c *Camera) Size() (width, height float64) {
	return c.width, c.height
}

// Update scrolls the window so that the target stays inside the margin box
// and reports whether the viewport moved. Every edge is checked on its own so
// simultaneous horizontal and vertical corrections are both applied. The new
// origin is truncated to whole pixels.
func (c *Camera) Update(target core.Box) bool {
	left := float64(c.viewLeft)
	bottom := float64(c.viewBottom)
	changed := false

	if boundary := left + c.margins.LeftMargin; target.Left() < boundary {
		left -= boundary - target.Left()
		changed = true
	}

	if boundary := left + c.width - c.margins.RightMargin; target.Right() > boundary {
		left += target.Right() - boundary
		changed = true
	}

	if boundary := bottom + c.height - c.margins.TopMargin; target.Top() > boundary {
		bottom += target.Top() - boundary
		changed = true
	}

	if boundary := bottom + c.margins.BottomMargin; target.Bottom() < boundary {
		bottom -= boundary - target.Bottom()
		changed = true
	}

	if changed {
		c.viewLeft = int(left)
		c.viewBottom = int(bottom)
	}
	return changed
}

// Visible reports whether a world box intersects the window.
func (c *Camera) Visible(b core.Box) bool {
	window := core.NewBox(
		float64(c.viewLeft)+c.width/2,
		float64(c.viewBottom)+c.height/2,
		c.width, c.height,
	)
	return window.Intersects(b)
}

// ToView converts a world box to viewport-relative coordinates, with the
// window's bottom-left corner at (0, 0).
func (c *Camera) ToView(b core.Box) core.Box {
	return b.Translate(-float64(c.viewLeft), -float64(c.viewBottom))
}

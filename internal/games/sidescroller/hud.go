package sidescroller

import (
	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
)

// HUD holds the world-space anchors of the on-screen texts. The anchors
// follow the player only when the camera scrolls, so the texts stay put
// while the player walks inside the margin box.
type HUD struct {
	ClockX, ClockY   float64
	PromptX, PromptY float64
}

// Follow re-anchors the texts relative to the player's center.
func (h *HUD) Follow(p Player, cfg config.HUDConfig) {
	h.ClockX = p.X + cfg.ClockOffsetX
	h.ClockY = p.Y + cfg.ClockOffsetY
	h.PromptX = p.X + cfg.PromptOffsetX
	h.PromptY = p.Y + cfg.PromptOffsetY
}

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteCloud SpriteKind = iota
	SpriteFloor
	SpriteBlock
	SpriteObject
	SpritePlayer
)

// Sprite is a drawable in viewport-relative pixels, origin at the
// bottom-left corner of the window.
type Sprite struct {
	Kind    SpriteKind
	Variant int // Cloud variant
	Box     core.Box
}

// Label is a HUD text anchored at its left baseline in viewport pixels.
type Label struct {
	Text string
	X, Y float64
}

// Sprites returns the visible drawables back to front: clouds, platforms,
// objects and the player last.
func (g *Game) Sprites() []Sprite {
	var out []Sprite
	add := func(kind SpriteKind, variant int, b core.Box) {
		if g.camera.Visible(b) {
			out = append(out, Sprite{Kind: kind, Variant: variant, Box: g.camera.ToView(b)})
		}
	}

	for _, c := range g.world.Clouds {
		add(SpriteCloud, c.Variant, c.Box)
	}
	for _, p := range g.world.Platforms {
		kind := SpriteFloor
		if p.Kind == PlatformBlock {
			kind = SpriteBlock
		}
		add(kind, 0, p.Box)
	}
	for _, o := range g.world.Objects {
		add(SpriteObject, 0, o.Box)
	}
	add(SpritePlayer, 0, g.player.Box())

	return out
}

// Labels returns the HUD texts in viewport pixels. The prompt is present
// only while an object is active.
func (g *Game) Labels() []Label {
	left, bottom := g.camera.Viewport()
	labels := []Label{{
		Text: g.ClockText(),
		X:    g.hud.ClockX - float64(left),
		Y:    g.hud.ClockY - float64(bottom),
	}}
	if prompt := g.Prompt(); prompt != "" {
		labels = append(labels, Label{
			Text: prompt,
			X:    g.hud.PromptX - float64(left),
			Y:    g.hud.PromptY - float64(bottom),
		})
	}
	return labels
}

package sidescroller

import (
	"math/rand"

	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
)

// PlatformKind distinguishes floor tiles from free-standing blocks.
type PlatformKind int

const (
	PlatformFloor PlatformKind = iota
	PlatformBlock
)

// Platform is a static solid rectangle.
type Platform struct {
	Kind PlatformKind
	Box  core.Box
}

// Cloud is a decorative background element. Clouds never collide.
type Cloud struct {
	Variant int // 0 or 1, picks the sprite
	Box     core.Box
}

// InteractiveObject is a world object the player can interact with while
// standing inside its activation interval.
type InteractiveObject struct {
	ID       string
	Kind     string
	Name     string
	Box      core.Box
	Low      float64 // Activation interval start, inclusive
	High     float64 // Activation interval end, exclusive
	Airborne bool    // Whether the object activates without the player grounded
	Title    string
	Lines    []string
}

// World holds the level geometry built once per session.
type World struct {
	Platforms []Platform
	Clouds    []Cloud
	Objects   []InteractiveObject
}

// NewWorld builds the level from configuration. The rng only places clouds,
// so physics and interaction never depend on the seed.
func NewWorld(cfg config.WorldConfig, objects []config.ObjectConfig, rng *rand.Rand) *World {
	w := &World{}

	floor := cfg.Floor
	x := floor.StartX
	tiles := int(cfg.Length / floor.TileWidth)
	for i := 1; i < tiles; i++ {
		w.Platforms = append(w.Platforms, Platform{
			Kind: PlatformFloor,
			Box:  core.NewBox(x, floor.Y, floor.TileWidth, floor.TileHeight),
		})
		x += floor.TileWidth
	}

	for _, b := range cfg.Blocks {
		w.Platforms = append(w.Platforms, Platform{
			Kind: PlatformBlock,
			Box:  core.NewBox(b.X, b.Y, cfg.BlockSize, cfg.BlockSize),
		})
	}

	w.Clouds = placeClouds(cfg.Length, cfg.Clouds, rng)

	for _, o := range objects {
		w.Objects = append(w.Objects, InteractiveObject{
			ID:       o.ID,
			Kind:     o.Kind,
			Name:     o.Name,
			Box:      core.NewBox(o.X, o.Y, o.Width, o.Height),
			Low:      o.RangeLow,
			High:     o.RangeHigh,
			Airborne: o.AllowAirborne,
			Title:    o.Dialogue.Title,
			Lines:    o.Dialogue.Lines,
		})
	}

	return w
}

// placeClouds spreads clouds along the world. Each x comes from a window
// that slides by one stride per cloud, keeping spacing roughly even.
func placeClouds(length float64, cfg config.CloudConfig, rng *rand.Rand) []Cloud {
	count := int(length / cfg.Stride)
	clouds := make([]Cloud, 0, len(cfg.Fixed)+count)

	for _, p := range cfg.Fixed {
		clouds = append(clouds, Cloud{
			Variant: rng.Intn(2),
			Box:     core.NewBox(p.X, p.Y, cfg.Width, cfg.Height),
		})
	}

	low, high := cfg.FirstLow, cfg.FirstHigh
	stride := int(cfg.Stride)
	for i := 1; i < count; i++ {
		cx := low + rng.Intn(high-low+1)
		cy := cfg.MinY + rng.Intn(cfg.MaxY-cfg.MinY+1)
		clouds = append(clouds, Cloud{
			Variant: rng.Intn(2),
			Box:     core.NewBox(float64(cx), float64(cy), cfg.Width, cfg.Height),
		})
		low += stride
		high += stride
	}

	return clouds
}

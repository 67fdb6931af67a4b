package sidescroller

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
)

func testPhysics() Physics {
	cfg := config.DefaultGameConfig()
	return NewPhysics(cfg.Physics, cfg.Player.JumpSpeed)
}

func testPlayer(x, y float64) Player {
	return Player{X: x, Y: y, W: 64, H: 144}
}

// flatFloor is one wide floor slab with its top at y=56.
func flatFloor() []Platform {
	return []Platform{{Kind: PlatformFloor, Box: core.NewBox(0, -75, 10000, 262)}}
}

func TestLandingClampsVelocity(t *testing.T) {
	ph := testPhysics()
	platforms := flatFloor()
	p := testPlayer(0, 400)
	p.VY = -30

	for i := 0; i < 100 && !p.Grounded; i++ {
		ph.Step(&p, platforms)
	}
	// One more tick settles the velocity picked up on the touching frame.
	ph.Step(&p, platforms)

	if !p.Grounded {
		t.Fatal("expected player to land")
	}
	if p.Box().Bottom() != 56 {
		t.Errorf("expected bottom on floor top 56, got %v", p.Box().Bottom())
	}
	if p.VY != 0 {
		t.Errorf("expected vy 0 after landing, got %v", p.VY)
	}
}

func TestStandingStaysGrounded(t *testing.T) {
	ph := testPhysics()
	platforms := flatFloor()
	p := testPlayer(0, 128)

	for i := 0; i < 10; i++ {
		ph.Step(&p, platforms)
		if !p.Grounded || p.Y != 128 || p.VY != 0 {
			t.Fatalf("tick %d: expected resting player, got y=%v vy=%v grounded=%v", i, p.Y, p.VY, p.Grounded)
		}
	}
}

func TestSpawnInsideFloorSnapsToSurface(t *testing.T) {
	ph := testPhysics()
	p := testPlayer(0, 100)

	ph.Step(&p, flatFloor())

	if p.Y != 128 || !p.Grounded {
		t.Errorf("expected player lifted onto the floor, got y=%v grounded=%v", p.Y, p.Grounded)
	}
}

func TestBlockStopsHorizontalMovement(t *testing.T) {
	ph := testPhysics()
	platforms := append(flatFloor(), Platform{Kind: PlatformBlock, Box: core.NewBox(256, 96, 80, 80)})
	p := testPlayer(100, 128)

	for i := 0; i < 30; i++ {
		p.VX = 5
		ph.Step(&p, platforms)
		for _, pl := range platforms {
			if p.Box().Intersects(pl.Box) {
				t.Fatalf("tick %d: player overlaps platform %+v", i, pl.Box)
			}
		}
	}

	if p.X != 184 {
		t.Errorf("expected player stopped against the block at x=184, got %v", p.X)
	}
	if p.VX != 0 {
		t.Errorf("expected vx 0 after hitting the block, got %v", p.VX)
	}
	if !p.Grounded {
		t.Error("expected player to stay grounded while pushing the block")
	}
}

func TestCeilingStopsJump(t *testing.T) {
	ph := testPhysics()
	platforms := append(flatFloor(), Platform{Kind: PlatformBlock, Box: core.NewBox(0, 300, 200, 40)})
	p := testPlayer(0, 128)
	p.Grounded = true

	if !ph.Jump(&p) {
		t.Fatal("expected jump from the ground")
	}
	for i := 0; i < 5; i++ {
		ph.Step(&p, platforms)
	}

	if p.Box().Top() != 280 {
		t.Errorf("expected head under the ceiling at 280, got %v", p.Box().Top())
	}
	if p.VY != 0 {
		t.Errorf("expected vy 0 after hitting the ceiling, got %v", p.VY)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	ph := testPhysics()
	p := testPlayer(0, 400)

	if ph.Jump(&p) {
		t.Error("expected no jump while airborne")
	}
	if p.VY != 0 {
		t.Errorf("expected vy unchanged, got %v", p.VY)
	}
}

func TestJumpApex(t *testing.T) {
	cfg := config.DefaultGameConfig()
	world := NewWorld(cfg.World, cfg.Objects, rand.New(rand.NewSource(1)))
	ph := testPhysics()
	p := testPlayer(cfg.Player.StartX, cfg.Player.StartY)
	p.Grounded = ph.Grounded(p, world.Platforms)
	if !p.Grounded {
		t.Fatal("expected spawn to be grounded")
	}

	ph.Jump(&p)
	apex := p.Y
	landed := false
	for i := 0; i < 120; i++ {
		ph.Step(&p, world.Platforms)
		apex = math.Max(apex, p.Y)
		if p.Grounded {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("expected player to land within 120 ticks")
	}

	// Discrete integration peaks slightly below v^2/2g.
	v, g := cfg.Player.JumpSpeed, cfg.Physics.Gravity
	height := apex - cfg.Player.StartY
	if math.Abs(height-v*v/(2*g)) > v/2 {
		t.Errorf("expected apex near %v, got %v", v*v/(2*g), height)
	}

	ph.Step(&p, world.Platforms)
	if p.Y != cfg.Player.StartY || p.VY != 0 {
		t.Errorf("expected player back at rest on y=%v, got y=%v vy=%v", cfg.Player.StartY, p.Y, p.VY)
	}
}

func TestFallingOntoBlockCornerLands(t *testing.T) {
	block := Platform{Kind: PlatformBlock, Box: core.NewBox(256, 96, 80, 80)} // left 216, top 136

	tests := []struct {
		name       string
		x, y       float64
		vx, vy     float64
		wantX      float64
		wantBottom float64
		wantLand   bool
	}{
		// After the move: 1px into the top, 3px into the side.
		{"shallow top lands", 182, 209, 5, -1, 187, 136, true},
		// Same from the right side of the block.
		{"shallow top lands moving left", 330, 209, -5, -1, 325, 136, true},
		// 30px into the top, 3px into the side: pushed off the side.
		{"deep top slides off", 182, 180, 5, -1, 184, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph := testPhysics()
			p := testPlayer(tt.x, tt.y)
			p.VX, p.VY = tt.vx, tt.vy

			ph.Step(&p, []Platform{block})

			if p.X != tt.wantX {
				t.Errorf("x = %v, want %v", p.X, tt.wantX)
			}
			if tt.wantLand {
				if p.Box().Bottom() != tt.wantBottom || p.VY != 0 || !p.Grounded {
					t.Errorf("expected landing at bottom %v, got bottom=%v vy=%v grounded=%v",
						tt.wantBottom, p.Box().Bottom(), p.VY, p.Grounded)
				}
				if p.VX != tt.vx {
					t.Errorf("expected horizontal speed kept after landing, got %v", p.VX)
				}
				return
			}
			if p.Grounded || p.VX != 0 {
				t.Errorf("expected side stop without landing, got vx=%v grounded=%v", p.VX, p.Grounded)
			}
		})
	}
}

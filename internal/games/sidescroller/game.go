// Package sidescroller implements "the clock is ticking...", a side-scrolling
// platformer: walk right across a scrolling world, jump over blocks and read
// the sign before the ten-minute countdown runs out.
package sidescroller

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
	"github.com/vovakirdan/ticking/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "ticking"

// Title is the display name of the game.
const Title = "The Clock Is Ticking"

// Game is the simulation context: it owns the world, the player, the camera,
// the session clock and the mode machine. Its configuration is fixed when the
// game is built.
type Game struct {
	cfg     config.GameConfig // Fixed at construction
	runtime core.RuntimeConfig

	world    *World
	player   Player
	physics  Physics
	camera   *Camera
	clock    *SessionClock
	machine  *Machine
	endDelay Delay
	hud      HUD

	intentX   int // -1 left, 0 idle, +1 right
	active    int // index of the object in range, -1 if none
	viewing   int // index of the object being read while interacting
	furthest  float64
	tickCount int
	gameOver  bool
	cues      []core.SoundCue
}

var (
	sessionMu  sync.RWMutex
	sessionCfg = config.DefaultGameConfig()
)

// SetSessionConfig sets the configuration of games built by New, including
// those the registry creates. The CLI calls it once with a validated config.
func SetSessionConfig(cfg config.GameConfig) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	sessionCfg = cfg
}

// New creates a game using the session configuration.
func New() *Game {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return NewWithConfig(sessionCfg)
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg, active: -1, viewing: -1, machine: NewMachine()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset builds a fresh session. The seed only affects cloud placement.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg := g.cfg

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(cfg.World, cfg.Objects, rng)
	g.physics = NewPhysics(cfg.Physics, cfg.Player.JumpSpeed)

	g.player = Player{
		X: cfg.Player.StartX,
		Y: cfg.Player.StartY,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}
	g.player.Grounded = g.physics.Grounded(g.player, g.world.Platforms)

	g.camera = NewCamera(cfg.Screen, cfg.Viewport)
	g.camera.Update(g.player.Box())
	g.hud = HUD{}
	g.hud.Follow(g.player, cfg.HUD)

	g.clock = NewSessionClock(cfg.Session.Length)
	g.machine = NewMachine()
	g.endDelay.Cancel()

	g.intentX = 0
	g.active = -1
	g.viewing = -1
	g.furthest = 0
	g.tickCount = 0
	g.gameOver = false
	g.cues = nil
}

// Step advances the session by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 || math.IsNaN(dt) {
		panic(fmt.Sprintf("sidescroller: invalid tick delta %v", dt))
	}
	g.cues = nil

	switch g.machine.Mode() {
	case ModeStart:
		g.stepStart(in, dt)
	case ModePlaying:
		g.stepPlaying(in, dt)
	case ModePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.transition(ModePlaying)
		}
	case ModeInteracting:
		if in.Has(core.ActionInteract) {
			g.viewing = -1
			g.transition(ModePlaying)
		}
	case ModeEnded:
		if g.endDelay.Advance(dt) {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State(), Sounds: g.cues}
}

func (g *Game) stepStart(in core.InputFrame, dt float64) {
	if _, pending := g.machine.Pending(); !pending && (in.Has(core.ActionConfirm) || in.Has(core.ActionJump)) {
		g.playMusic(g.cfg.Audio.MenuTracks, 0)
		if err := g.machine.Schedule(ModePlaying, g.cfg.Session.StartDelay); err != nil {
			panic(err)
		}
		// The countdown starts on the next tick
		if g.machine.Mode() == ModePlaying {
			g.enterPlaying()
		}
		return
	}
	if g.machine.Advance(dt) {
		g.enterPlaying()
	}
}

func (g *Game) enterPlaying() {
	g.playMusic(g.cfg.Audio.GameTracks, 0)
}

func (g *Game) stepPlaying(in core.InputFrame, dt float64) {
	if in.Has(core.ActionPause) {
		g.intentX = 0
		g.player.VX = 0
		g.transition(ModePaused)
		return
	}

	if in.Has(core.ActionInteract) && g.active >= 0 {
		g.intentX = 0
		g.player.Stop()
		g.viewing = g.active
		g.transition(ModeInteracting)
		return
	}

	g.applyIntents(in)

	g.tickCount++
	g.physics.Step(&g.player, g.world.Platforms)
	g.furthest = math.Max(g.furthest, g.player.X-g.cfg.Player.StartX)

	if g.camera.Update(g.player.Box()) {
		g.hud.Follow(g.player, g.cfg.HUD)
	}

	g.active = ActiveObject(g.world.Objects, g.player)

	g.clock.Tick(dt)
	if g.clock.Expired() {
		g.intentX = 0
		g.active = -1
		g.transition(ModeEnded)
		g.endDelay.Arm(g.cfg.Session.EndDelay)
		if g.cfg.Session.EndDelay <= 0 {
			g.gameOver = true
		}
	}
}

// applyIntents turns this tick's actions into velocity requests.
func (g *Game) applyIntents(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.intentX = -1
	case in.Has(core.ActionRight):
		g.intentX = 1
	}
	if in.Has(core.ActionReleaseLeft) && g.intentX < 0 {
		g.intentX = 0
	}
	if in.Has(core.ActionReleaseRight) && g.intentX > 0 {
		g.intentX = 0
	}
	g.player.VX = float64(g.intentX) * g.cfg.Player.MoveSpeed

	if in.Has(core.ActionJump) && g.physics.Jump(&g.player) {
		g.playEffect(0)
	} else if in.Has(core.ActionDown) {
		g.player.VY = -g.cfg.Player.MoveSpeed
	}
}

// transition applies a mode change the step logic has already checked.
func (g *Game) transition(to Mode) {
	if err := g.machine.Transition(to); err != nil {
		panic(err)
	}
}

func (g *Game) playMusic(tracks []string, index int) {
	if index >= len(tracks) {
		return
	}
	g.cues = append(g.cues, core.SoundCue{
		Kind:   core.SoundMusic,
		Index:  index,
		Name:   tracks[index],
		Volume: g.cfg.Audio.MusicVolume,
	})
}

func (g *Game) playEffect(index int) {
	effects := g.cfg.Audio.Effects
	if index >= len(effects) {
		return
	}
	g.cues = append(g.cues, core.SoundCue{
		Kind:   core.SoundEffect,
		Index:  index,
		Name:   effects[index],
		Volume: g.cfg.Audio.FXVolume,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.machine.Mode() == ModePaused,
		Mode:     g.machine.Mode().String(),
	}
}

// Score is the furthest distance reached right of the spawn, in tens of
// pixels.
func (g *Game) Score() int {
	return int(g.furthest / 10)
}

// Mode returns the current session mode.
func (g *Game) Mode() Mode {
	return g.machine.Mode()
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Viewport returns the current (view_left, view_bottom).
func (g *Game) Viewport() (left, bottom int) {
	return g.camera.Viewport()
}

// Clock returns the session clock.
func (g *Game) Clock() *SessionClock {
	return g.clock
}

// World returns the level geometry.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// ActiveObject returns the object in range, or nil.
func (g *Game) ActiveObject() *InteractiveObject {
	if g.active < 0 {
		return nil
	}
	return &g.world.Objects[g.active]
}

// Viewing returns the object being read while interacting, or nil.
func (g *Game) Viewing() *InteractiveObject {
	if g.viewing < 0 {
		return nil
	}
	return &g.world.Objects[g.viewing]
}

// Prompt returns the interaction prompt, empty when nothing is in range.
func (g *Game) Prompt() string {
	if o := g.ActiveObject(); o != nil {
		return o.Prompt()
	}
	return ""
}

// ClockText returns the countdown HUD text.
func (g *Game) ClockText() string {
	return g.clock.Display()
}

func init() {
	registry.Register(registry.Entry{
		ID:      ID,
		Title:   Title,
		Summary: "Walk right and read the sign before ten minutes run out.",
		New:     func() registry.Game { return New() },
	})
}

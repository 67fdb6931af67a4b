package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
	"github.com/vovakirdan/ticking/internal/registry"
	"github.com/vovakirdan/ticking/internal/storage"
)

// Options carries the collaborators of a play session. Every field is
// optional.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Audio    AudioSink
	Renderer *lipgloss.Renderer
	Player   string             // Name stored with scores
	Input    config.InputConfig // Zero values fall back to the defaults
}

type view int

const (
	viewGame view = iota
	viewScores
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	audio      AudioSink
	renderer   *lipgloss.Renderer
	palette    Palette
	player     string
	config     core.RuntimeConfig
	keys       *KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	hold       holdTracker
	clock      frameClock
	view       view
	scoreboard ScoreboardModel
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current session
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	audio := opts.Audio
	if audio == nil {
		audio = NewLogSink(logger)
	}

	input := opts.Input
	defaults := config.DefaultGameConfig().Input
	if input.HoldTimeoutMS <= 0 {
		input.HoldTimeoutMS = defaults.HoldTimeoutMS
	}
	if input.MaxTickDTMS <= 0 {
		input.MaxTickDTMS = defaults.MaxTickDTMS
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		audio:      audio,
		renderer:   opts.Renderer,
		palette:    NewPalette(opts.Renderer),
		player:     opts.Player,
		config:     cfg,
		keys:       &keys,
		keyMapper:  NewKeyMapper(&keys),
		help:       h,
		inputFrame: core.NewInputFrame(),
		hold:       holdTracker{timeout: time.Duration(input.HoldTimeoutMS) * time.Millisecond},
		clock:      newFrameClock(cfg.TickRate, time.Duration(input.MaxTickDTMS)*time.Millisecond),
		now:        time.Now,
	}
}

// playHeight leaves the last terminal row to the help bar.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	m.logger.Info("session started", "game", m.game.ID(), "player", m.player, "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.view == viewScores {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only record intents; the next
// tick consumes them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session quit", "player", m.player, "mode", m.gameState.Mode)
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now())
	}
	m.inputFrame.Set(action)

	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// terminal, so the session carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if m.view == viewScores {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = sb.(ScoreboardModel)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Delta(now)
	if release := m.hold.Expire(now); release != core.ActionNone {
		m.inputFrame.Set(release)
	}

	if m.view == viewScores {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	restart := m.inputFrame.Has(core.ActionRestart)
	if m.gameState.GameOver && (restart || m.inputFrame.Has(core.ActionBack)) {
		m.resetSession(now)
		if restart {
			// Skip the title screen
			m.inputFrame.Set(core.ActionConfirm)
		}
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	if result.State.Mode != m.gameState.Mode {
		m.logger.Debug("mode changed", "from", m.gameState.Mode, "to", result.State.Mode)
	}
	m.gameState = result.State
	m.keys.SetSessionOver(m.gameState.GameOver)

	for _, cue := range result.Sounds {
		m.audio.Play(cue)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// resetSession starts a fresh session with a new seed.
func (m *Model) resetSession(now time.Time) {
	m.config.Seed = now.UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.keys.SetSessionOver(false)
	m.scoreSaved = false
	m.hold.Reset()
	m.inputFrame.Clear()
	m.logger.Info("session reset", "player", m.player, "seed", m.config.Seed)
}

// saveScore records the finished session. Best-effort: the game continues
// regardless.
func (m *Model) saveScore() {
	score := m.gameState.Score
	m.logger.Info("session ended", "player", m.player, "score", score)
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

func (m *Model) openScoreboard() {
	m.scoreboard = NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.player,
		m.renderer, m.config.ScreenW, m.config.ScreenH)
	m.view = viewScores
	m.hold.Reset()
	m.inputFrame.Clear()
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = sb.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
		return m, nil
	}
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".ticking", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	helpStyle := m.palette.Style(core.ColorGray)
	return RenderScreen(m.screen, m.palette) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
	"github.com/vovakirdan/ticking/internal/games/sidescroller"
	"github.com/vovakirdan/ticking/internal/platform/tui"
	"github.com/vovakirdan/ticking/internal/registry"
	"github.com/vovakirdan/ticking/internal/storage"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a session in this terminal.

Controls:
  Left/Right, A/D   - Walk
  Up/W/Space        - Jump
  Down/S            - Drop faster
  E                 - Interact with the sign
  Esc/P             - Pause
  Enter             - Start / resume
  R                 - Restart (after time runs out)
  B                 - Back to the title (after time runs out)
  Tab               - Scores (after time runs out)
  Ctrl+S            - Screenshot to ~/.ticking/screenshots
  Q/Ctrl+C          - Quit

Examples:
  ticking play
  ticking play --bell
  ticking play --config ./my-ticking.yaml --log-file ticking.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell for sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(play())
}

func play() error {
	// Fail early on a broken config instead of silently playing defaults
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	sidescroller.SetSessionConfig(gameCfg)

	logger, closeLog, err := newLogger("ticking", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(sidescroller.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var audio tui.AudioSink = tui.NewLogSink(logger)
	if flagBell {
		audio = tui.NewBellSink(os.Stdout, audio)
	}

	err = tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Audio:  audio,
		Player: playerName(),
		Input:  gameCfg.Input,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName is the name stored with local scores.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

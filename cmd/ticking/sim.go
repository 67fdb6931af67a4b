package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ticking/internal/config"
	"github.com/vovakirdan/ticking/internal/core"
	"github.com/vovakirdan/ticking/internal/games/sidescroller"
)

var (
	flagSimTicks     int
	flagSimEvery     int
	flagSimWalk      bool
	flagSimJumpEvery int
	flagSimInteract  bool
	flagSimRender    bool
	flagSimWidth     int
	flagSimHeight    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted session",
	Long: `Run the simulation without a terminal UI and print state snapshots.

The session is confirmed on the first tick. Each tick lasts 1/--fps seconds.

Examples:
  ticking sim --ticks 300 --walk
  ticking sim --ticks 600 --walk --jump-every 45 --every 30
  ticking sim --ticks 120 --walk --render`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 60, "Print a snapshot every N ticks (0 = only the last)")
	simCmd.Flags().BoolVar(&flagSimWalk, "walk", false, "Hold right once playing")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Press jump every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagSimInteract, "interact", false, "Open the first prompt that appears")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 120, "Frame width for --render")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 40, "Frame height for --render")
}

// simScript drives a headless session.
type simScript struct {
	Ticks     int
	DT        float64
	Every     int
	Walk      bool
	JumpEvery int
	Interact  bool
}

// frame builds the input for tick i given the current game.
func (s simScript) frame(i int, g *sidescroller.Game, walking, interacted bool) core.InputFrame {
	in := core.NewInputFrame()
	if i == 0 {
		in.Set(core.ActionConfirm)
		return in
	}
	if g.Mode() != sidescroller.ModePlaying {
		return in
	}
	if s.Walk && !walking {
		in.Set(core.ActionRight)
	}
	if s.JumpEvery > 0 && i%s.JumpEvery == 0 {
		in.Set(core.ActionJump)
	}
	if s.Interact && !interacted && g.Prompt() != "" {
		in.Set(core.ActionInteract)
	}
	return in
}

// simulate runs the script against g and writes snapshot lines to w.
// It stops early once the game reports game over.
func simulate(w io.Writer, g *sidescroller.Game, script simScript) sidescroller.Snapshot {
	walking := false
	interacted := false
	for i := 0; i < script.Ticks; i++ {
		in := script.frame(i, g, walking, interacted)
		if in.Has(core.ActionRight) {
			walking = true
		}
		if in.Has(core.ActionInteract) {
			interacted = true
		}

		res := g.Step(in, script.DT)
		if script.Every > 0 && (i+1)%script.Every == 0 {
			writeSnapshot(w, g.Snapshot())
		}
		if res.State.GameOver {
			break
		}
	}

	snap := g.Snapshot()
	if script.Every <= 0 {
		writeSnapshot(w, snap)
	}
	return snap
}

func writeSnapshot(w io.Writer, s sidescroller.Snapshot) {
	fmt.Fprintf(w, "tick=%-5d mode=%-11s pos=(%.1f,%.1f) vel=(%.1f,%.1f) grounded=%-5t view=(%d,%d) left=%.2f score=%d",
		s.Tick, s.Mode, s.X, s.Y, s.VX, s.VY, s.Grounded, s.ViewLeft, s.ViewBottom, s.Remaining, s.Score)
	if s.Prompt != "" {
		fmt.Fprintf(w, " prompt=%q", s.Prompt)
	}
	fmt.Fprintln(w)
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}

	g := sidescroller.NewWithConfig(gameCfg)
	g.Reset(core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	simulate(os.Stdout, g, simScript{
		Ticks:     flagSimTicks,
		DT:        1 / float64(flagFPS),
		Every:     flagSimEvery,
		Walk:      flagSimWalk,
		JumpEvery: flagSimJumpEvery,
		Interact:  flagSimInteract,
	})

	if flagSimRender {
		screen := core.NewScreen(flagSimWidth, flagSimHeight)
		g.Render(screen)
		fmt.Println(screen.String())
	}
}

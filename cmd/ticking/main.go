// ticking runs "the clock is ticking...", a terminal side-scroller with a
// ten-minute countdown.
//
// Usage:
//
//	ticking                  - Play (same as "ticking play")
//	ticking play             - Play in this terminal
//	ticking list             - List available games
//	ticking scores           - Show the best distances
//	ticking serve            - Start SSH server for remote play
//	ticking config           - Print or validate game configuration
//	ticking sim              - Run a headless scripted session
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible cloud layout
//	--db <path>          - Set database path (default: ~/.ticking/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/ticking/internal/games/sidescroller"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitOnError reports err and exits. Commands return errors rather than
// exiting so their deferred cleanup runs first.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ticking",
	Short: "The clock is ticking... - a terminal side-scroller",
	Long: `The clock is ticking... is a small platformer for your terminal.
Walk right, jump over blocks and read the sign before ten minutes run out.

Available commands:
  play     - Play in this terminal (default)
  list     - Show all available games
  scores   - View the best distances
  serve    - Start SSH server for remote play
  config   - Print the default config or validate a file
  sim      - Run a headless scripted session

Examples:
  ticking
  ticking play --bell
  ticking scores
  ticking serve --ssh :2222
  ticking config --validate ./my-ticking.yaml
  ticking sim --ticks 600 --walk`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ticking/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell for sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

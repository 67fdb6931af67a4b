package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ticking/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game built into this binary.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printGames(os.Stdout, registry.Entries())
	},
}

// printGames writes the game list. A single game is shown with its summary
// instead of a table.
func printGames(w io.Writer, games []registry.Entry) {
	switch len(games) {
	case 0:
		fmt.Fprintln(w, "No games available.")
		return
	case 1:
		g := games[0]
		fmt.Fprintf(w, "%s (%s)\n", g.Title, g.ID)
		if g.Summary != "" {
			fmt.Fprintf(w, "  %s\n", g.Summary)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'ticking play' to start.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ticking/internal/games/sidescroller"
	"github.com/vovakirdan/ticking/internal/platform/tui"
	"github.com/vovakirdan/ticking/internal/registry"
	"github.com/vovakirdan/ticking/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best distances",
	Long: `Display the best distances reached before the clock ran out.

Examples:
  ticking scores
  ticking scores --limit 25
  ticking scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	gameID := sidescroller.ID

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, playerName(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Distances - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ticking play' to set the first record!")
		return
	}

	maxPlayerLen := len("Player")
	for _, entry := range scores {
		maxPlayerLen = max(maxPlayerLen, len(entry.Player))
	}

	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "Rank", maxPlayerLen, "Player", "Distance", "Date")
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "----", maxPlayerLen, "------", "--------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-8d  %s\n", i+1, maxPlayerLen, entry.Player, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Sessions: %d  Players: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
	if best, err := store.PersonalBest(gameID, playerName()); err == nil && best > 0 {
		fmt.Printf("Your best: %d\n", best)
	}
}

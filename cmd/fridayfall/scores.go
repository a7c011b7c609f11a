package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akovalev/fridayfall/internal/platform/tui"
	"github.com/akovalev/fridayfall/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and round history",
	Long: `Display the top 10 leaderboard and the recent round history.

By default an interactive browser opens; --plain prints the leaderboard
to stdout instead.

Examples:
  fridayfall scores
  fridayfall scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the leaderboard and round stats as plain text.
func printScores(store *storage.Store) {
	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Black Friday")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fridayfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Name", "Score", "Mode")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-6s  %-10d  %s\n", i+1, e.Name, e.Score, e.Mode)
	}

	stats, err := store.Stats()
	if err != nil || stats.RoundsCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Rounds played: %d   Best: %d   Average: %.1f\n",
		stats.RoundsCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

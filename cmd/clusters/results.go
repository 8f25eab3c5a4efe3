package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/storage"
)

var resultsCmd = &cobra.Command{
	Use:   "results <puzzle>",
	Short: "Show past results for a puzzle",
	Long: `Display the most recent plays and the best solved result for the
specified puzzle.

Examples:
  clusters results classic-2026-06`,
	Args: cobra.ExactArgs(1),
	Run:  runResults,
}

func runResults(cmd *cobra.Command, args []string) {
	puzzleID := args[0]

	if !catalog.Exists(puzzleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", puzzleID)
		fmt.Fprintln(os.Stderr, "Run 'clusters list' to see available puzzles.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.RecentResults(puzzleID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - %s\n", puzzleID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'clusters play %s' to record the first one!\n", puzzleID)
		return
	}

	// Print header
	fmt.Printf("  %-18s  %-10s  %-8s  %s\n", "When", "Mistakes", "Time", "Outcome")
	fmt.Printf("  %-18s  %-10s  %-8s  %s\n", "----", "--------", "----", "-------")

	for _, e := range entries {
		outcome := "abandoned"
		if e.Solved {
			outcome = "solved"
		}
		d := time.Duration(e.DurationSecs) * time.Second
		fmt.Printf("  %-18s  %-10d  %-8s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Mistakes, d, outcome)
	}

	fmt.Println()
	best, err := store.BestResult(puzzleID)
	if err == nil && best != nil {
		d := time.Duration(best.DurationSecs) * time.Second
		fmt.Printf("Best: %d mistakes in %s\n", best.Mistakes, d)
	}
}

// clusters is a terminal grouping-puzzle: 100 squares hide ten categories
// of ten items, and merging same-category squares consolidates the board
// until every category is revealed.
//
// Usage:
//
//	clusters play [puzzle]   - Play a puzzle (interactive picker if omitted)
//	clusters list            - List available puzzles
//	clusters results <id>    - Show past results for a puzzle
//	clusters serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set shuffle seed for reproducible grids
//	--db <path>        - Set database path (default: ~/.clusters/results.db)
//	--config <path>    - Set app config YAML path
//	--puzzles <dir>    - Load extra puzzle YAML files from a directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Will-Nollert/clusters/internal/puzzles"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagPuzzleDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Clusters - a grouping puzzle in your terminal",
	Long: `Clusters is a terminal puzzle game. The board starts as 100 shuffled
squares hiding ten secret categories of ten items each. Select two
squares: if they share a category they merge into one cluster, otherwise
you take a mistake. Assemble all ten categories to win.

Available commands:
  play     - Play a puzzle directly or via the interactive picker
  list     - Show all available puzzles
  results  - View past results for a puzzle
  serve    - Start SSH server for remote play

Examples:
  clusters play
  clusters play classic-2026-06
  clusters list
  clusters results classic-2026-06
  clusters serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagPuzzleDir != "" {
			if err := puzzles.RegisterDir(flagPuzzleDir); err != nil {
				return fmt.Errorf("loading puzzles from %s: %w", flagPuzzleDir, err)
			}
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clusters/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to app config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPuzzleDir, "puzzles", "", "Directory of extra puzzle YAML files")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

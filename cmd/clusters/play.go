package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/config"
	"github.com/Will-Nollert/clusters/internal/game"
	"github.com/Will-Nollert/clusters/internal/platform/tui"
	"github.com/Will-Nollert/clusters/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Start playing the given puzzle, or open the interactive picker when no
puzzle id is given.

Controls:
  Arrows/hjkl - Move the cursor
  Enter/Space - Select a square (second selection attempts the merge)
  Esc         - Clear the selection
  R           - Restart with a fresh shuffle
  B           - Back to the picker
  Q/Ctrl+C    - Quit

Examples:
  clusters play
  clusters play classic-2026-06
  clusters play --seed 42
  clusters play --puzzles ./my-puzzles classic-2026-06`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; fall back to a classic 80x24.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// No puzzle argument: run the full picker flow.
	if len(args) == 0 {
		if runErr := tui.RunApp(store, cfg, flagSeed, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	puzzleID := args[0]
	if !catalog.Exists(puzzleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", puzzleID)
		fmt.Fprintln(os.Stderr, "Run 'clusters list' to see available puzzles.")
		os.Exit(1)
	}

	puzzle, err := catalog.Get(puzzleID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = timeSeed()
	}

	session, err := game.NewSession(puzzle, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(session, store, cfg, width, height); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Will-Nollert/clusters/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows a list of all puzzles registered in the catalog.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := catalog.List()

	if len(infos) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Month")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, info.Month)
	}

	fmt.Println()
	fmt.Println("Run 'clusters play <id>' to play a puzzle.")
}

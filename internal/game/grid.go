package game

import (
	"fmt"
	"math/rand"
	"time"
)

// expandPuzzle turns the puzzle into 100 singleton squares, one per item.
// Square ids combine the category id and the item's index within it
// ("cat-fruits-3"), which is stable across sessions and collision-free
// under the puzzle's uniqueness contract.
func expandPuzzle(p Puzzle) []GridSquare {
	grid := make([]GridSquare, 0, TotalItems)
	for _, cat := range p.Categories {
		for i, item := range cat.Items {
			grid = append(grid, GridSquare{
				ID:         fmt.Sprintf("%s-%d", cat.ID, i),
				Items:      []string{item},
				CategoryID: cat.ID,
			})
		}
	}
	return grid
}

// shuffleGrid permutes the grid in place with a Fisher-Yates shuffle,
// uniform over all orderings of the supplied rng.
func shuffleGrid(grid []GridSquare, rng *rand.Rand) {
	for i := len(grid) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		grid[i], grid[j] = grid[j], grid[i]
	}
}

// newGameState builds a fresh state for the puzzle: a shuffled grid of
// singletons, zero mistakes, nothing solved, clock started.
func newGameState(p Puzzle, rng *rand.Rand, now time.Time) GameState {
	grid := expandPuzzle(p)
	shuffleGrid(grid, rng)

	return GameState{
		PuzzleID:          p.ID,
		Grid:              grid,
		SolvedCategoryIDs: make([]string, 0, CategoryCount),
		Status:            StatusPlaying,
		StartTime:         now,
	}
}

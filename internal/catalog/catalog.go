// Package catalog provides a global registry of puzzles. Puzzle sources
// (the embedded built-ins, YAML directories) register themselves, allowing
// the CLI and the TUI to discover content without hardcoded dependencies.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Will-Nollert/clusters/internal/game"
)

// Info contains display metadata about a registered puzzle.
type Info struct {
	ID    string
	Month string
}

var (
	puzzles = make(map[string]game.Puzzle)
	mu      sync.RWMutex
)

// Register adds a puzzle to the catalog. Typically called from a source
// package's init() function. Panics on a malformed puzzle or a duplicate
// id: both are programmer errors, not runtime conditions.
func Register(p game.Puzzle) {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("catalog: refusing malformed puzzle: %v", err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := puzzles[p.ID]; exists {
		panic(fmt.Sprintf("catalog: puzzle %q already registered", p.ID))
	}
	puzzles[p.ID] = p
}

// List returns metadata for all registered puzzles, sorted by month then id
// so newer monthly puzzles group naturally.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(puzzles))
	for _, p := range puzzles {
		result = append(result, Info{ID: p.ID, Month: p.Month})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Month != result[j].Month {
			return result[i].Month < result[j].Month
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the puzzle with the given id.
func Get(id string) (game.Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := puzzles[id]
	if !ok {
		return game.Puzzle{}, fmt.Errorf("catalog: unknown puzzle %q", id)
	}
	return p, nil
}

// Exists checks whether a puzzle with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := puzzles[id]
	return ok
}

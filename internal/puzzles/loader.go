// Package puzzles loads puzzle content from YAML files and registers it
// with the catalog. The built-in monthly puzzle is embedded so the binary
// is playable with no external files.
package puzzles

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/game"
)

// Parse decodes and validates a single YAML puzzle document.
func Parse(data []byte) (game.Puzzle, error) {
	var p game.Puzzle
	if err := yaml.Unmarshal(data, &p); err != nil {
		return game.Puzzle{}, fmt.Errorf("puzzles: yaml unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return game.Puzzle{}, err
	}
	return p, nil
}

// Loader handles loading puzzles from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans the root for puzzle files. Files that fail to
// parse or validate are skipped with a warning rather than aborting the
// whole scan. Results are sorted by id for deterministic ordering.
func (l *Loader) LoadAll() ([]game.Puzzle, error) {
	var loaded []game.Puzzle

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		p, loadErr := l.LoadFile(path)
		if loadErr != nil {
			log.Warn("skipping puzzle file", "path", path, "error", loadErr)
			return nil
		}

		loaded = append(loaded, p)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("puzzles: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})

	return loaded, nil
}

// LoadFile loads a single puzzle file.
func (l *Loader) LoadFile(path string) (game.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Puzzle{}, fmt.Errorf("puzzles: reading file %s: %w", path, err)
	}
	return Parse(data)
}

// RegisterDir loads every puzzle under dir and registers it with the
// catalog. Puzzles whose id is already taken are skipped with a warning so
// a user directory can coexist with the built-ins.
func RegisterDir(dir string) error {
	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}

	for _, p := range loaded {
		if catalog.Exists(p.ID) {
			log.Warn("puzzle id already registered, skipping", "id", p.ID, "dir", dir)
			continue
		}
		catalog.Register(p)
	}
	return nil
}

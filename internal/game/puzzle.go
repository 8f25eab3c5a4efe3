// Package game implements the clusters puzzle core: grid initialization,
// the play-session state machine, and the row-packing layout used to
// display merged squares without horizontal gaps.
//
// The package is pure logic with no UI dependencies. The platform layer
// drives a Session through its public actions and renders the state it
// reads back.
package game

import "fmt"

// CategoryCount is the number of hidden categories in every puzzle.
const CategoryCount = 10

// ItemsPerCategory is the number of items each category holds.
const ItemsPerCategory = 10

// TotalItems is the number of items on a fresh grid.
const TotalItems = CategoryCount * ItemsPerCategory

// Category is one hidden group of related items.
type Category struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Items      []string `yaml:"items"`
	Difficulty int      `yaml:"difficulty"` // 1 (easy) to 10 (hard)
}

// Puzzle is the full content of one game: exactly ten categories of ten
// unique items. Puzzles are immutable once constructed.
type Puzzle struct {
	ID         string     `yaml:"id"`
	Month      string     `yaml:"month"` // e.g. "2026-06"
	Categories []Category `yaml:"categories"`
}

// Validate checks the 10x10 contract: ten categories, ten items each,
// category ids and item strings unique across the whole puzzle, and
// difficulties in range. A puzzle that fails validation cannot produce a
// playable grid, so callers should treat an error as fatal.
func (p Puzzle) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("game: puzzle has no id")
	}
	if len(p.Categories) != CategoryCount {
		return fmt.Errorf("game: puzzle %s has %d categories, want %d", p.ID, len(p.Categories), CategoryCount)
	}

	catIDs := make(map[string]bool, CategoryCount)
	items := make(map[string]bool, TotalItems)

	for _, cat := range p.Categories {
		if cat.ID == "" {
			return fmt.Errorf("game: puzzle %s has a category with no id", p.ID)
		}
		if catIDs[cat.ID] {
			return fmt.Errorf("game: puzzle %s has duplicate category id %q", p.ID, cat.ID)
		}
		catIDs[cat.ID] = true

		if len(cat.Items) != ItemsPerCategory {
			return fmt.Errorf("game: category %s has %d items, want %d", cat.ID, len(cat.Items), ItemsPerCategory)
		}
		if cat.Difficulty < 1 || cat.Difficulty > 10 {
			return fmt.Errorf("game: category %s has difficulty %d, want 1-10", cat.ID, cat.Difficulty)
		}

		for _, item := range cat.Items {
			if item == "" {
				return fmt.Errorf("game: category %s has an empty item", cat.ID)
			}
			if items[item] {
				return fmt.Errorf("game: puzzle %s has duplicate item %q", p.ID, item)
			}
			items[item] = true
		}
	}

	return nil
}

// CategoryByID returns the category with the given id, or nil if the
// puzzle has no such category.
func (p Puzzle) CategoryByID(id string) *Category {
	for i := range p.Categories {
		if p.Categories[i].ID == id {
			return &p.Categories[i]
		}
	}
	return nil
}

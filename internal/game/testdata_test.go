package game

import "fmt"

// testPuzzle builds a well-formed 10x10 puzzle. The first two categories
// get recognizable ids so scenario tests read naturally; the rest are
// generated.
func testPuzzle() Puzzle {
	names := []struct{ id, name string }{
		{"cat-fruits", "Fruits"},
		{"cat-countries", "Countries"},
		{"cat-2", "Category 2"},
		{"cat-3", "Category 3"},
		{"cat-4", "Category 4"},
		{"cat-5", "Category 5"},
		{"cat-6", "Category 6"},
		{"cat-7", "Category 7"},
		{"cat-8", "Category 8"},
		{"cat-9", "Category 9"},
	}

	p := Puzzle{ID: "test-puzzle", Month: "2026-01"}
	for ci, n := range names {
		cat := Category{ID: n.id, Name: n.name, Difficulty: ci + 1}
		for i := 0; i < ItemsPerCategory; i++ {
			cat.Items = append(cat.Items, fmt.Sprintf("%s item %d", n.name, i))
		}
		p.Categories = append(p.Categories, cat)
	}
	return p
}

// newTestSession starts a session on the test puzzle with a fixed seed.
func newTestSession(seed int64) *Session {
	s, err := NewSession(testPuzzle(), seed)
	if err != nil {
		panic(err)
	}
	return s
}

// squareID returns the stable id of the i-th item of a category.
func squareID(catID string, i int) string {
	return fmt.Sprintf("%s-%d", catID, i)
}

// solveCategory merges all ten squares of a category, asserting each merge
// succeeds. Returns the result of the final merge.
func solveCategory(s *Session, catID string) *MergeResult {
	var last *MergeResult
	for i := 1; i < ItemsPerCategory; i++ {
		s.SelectSquare(squareID(catID, 0))
		res := s.SelectSquare(squareID(catID, i))
		if res.Merge == nil || !res.Merge.Success {
			panic(fmt.Sprintf("merge %s + %s did not succeed", squareID(catID, 0), squareID(catID, i)))
		}
		last = res.Merge
	}
	return last
}

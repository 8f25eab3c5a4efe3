package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Session is the state machine for one play of a puzzle. It exclusively
// owns the GameState, the current selection, and the transient shake
// markers left behind by failed merges.
//
// All operations are synchronous and run to completion on the caller's
// goroutine; a Session must not be shared across goroutines.
type Session struct {
	puzzle Puzzle
	rng    *rand.Rand
	now    func() time.Time // injectable clock for tests

	state    GameState
	selected string // id of the sole selected square, "" when none
	shaking  map[string]bool
}

// NewSession validates the puzzle and starts a fresh session with a grid
// shuffled from the given seed. A malformed puzzle is a caller bug and
// yields an error rather than a partially initialized session.
func NewSession(p Puzzle, seed int64) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("game: cannot start session: %w", err)
	}

	s := &Session{
		puzzle:  p,
		rng:     rand.New(rand.NewSource(seed)),
		now:     time.Now,
		shaking: make(map[string]bool),
	}
	s.state = newGameState(p, s.rng, s.now())
	return s, nil
}

// Puzzle returns the immutable puzzle content this session plays.
func (s *Session) Puzzle() Puzzle {
	return s.puzzle
}

// State returns the current game state. The struct is a copy but its
// slices alias the session's own storage; callers should read it and let
// go before the next action.
func (s *Session) State() GameState {
	return s.state
}

// SelectSquare handles one tap on a square. First tap selects, tapping the
// selected square again deselects, and a tap with another square already
// selected attempts a merge between the two (the earlier selection is the
// "first" square and its id survives). The selection is always empty after
// a merge attempt, whatever the outcome.
//
// Taps are ignored after the game is won and on missing or solved squares.
func (s *Session) SelectSquare(id string) SelectResult {
	if s.state.Status == StatusWon {
		return SelectResult{Ignored: true}
	}
	idx := s.indexOf(id)
	if idx < 0 || s.state.Grid[idx].IsSolved {
		return SelectResult{Ignored: true}
	}

	// A new tap supersedes feedback from the previous failed attempt.
	s.ClearShake()

	switch {
	case s.selected == id:
		s.selected = ""
		return SelectResult{Deselected: true}
	case s.selected == "":
		s.selected = id
		return SelectResult{Selected: true}
	default:
		first := s.selected
		s.selected = ""
		res := s.attemptMerge(first, id)
		return SelectResult{Merge: &res}
	}
}

// attemptMerge combines the two squares if they share a category. On a
// mismatch the mistake counter goes up by one and both squares are marked
// for shake feedback; the grid itself is untouched.
func (s *Session) attemptMerge(firstID, secondID string) MergeResult {
	fi := s.indexOf(firstID)
	si := s.indexOf(secondID)
	if fi < 0 || si < 0 {
		// Cannot happen through SelectSquare; fail without counting a
		// mistake against the player.
		return MergeResult{Reason: ReasonDifferentCategories}
	}

	first := s.state.Grid[fi]
	second := s.state.Grid[si]

	if first.CategoryID != second.CategoryID {
		s.state.Mistakes++
		s.shaking[firstID] = true
		s.shaking[secondID] = true
		return MergeResult{Reason: ReasonDifferentCategories}
	}

	items := make([]string, 0, len(first.Items)+len(second.Items))
	items = append(items, first.Items...)
	items = append(items, second.Items...)

	merged := GridSquare{
		ID:         first.ID,
		Items:      items,
		CategoryID: first.CategoryID,
		IsSolved:   len(items) == ItemsPerCategory,
	}

	// The merged square takes the first square's slot; the second slot is
	// removed. Grid order is otherwise preserved.
	s.state.Grid[fi] = merged
	s.state.Grid = append(s.state.Grid[:si], s.state.Grid[si+1:]...)

	res := MergeResult{Success: true, Merged: &merged}
	if merged.IsSolved {
		// Item counts only grow, so a category crosses the threshold at
		// most once; no duplicate check needed.
		s.state.SolvedCategoryIDs = append(s.state.SolvedCategoryIDs, merged.CategoryID)
		res.Solved = s.puzzle.CategoryByID(merged.CategoryID)

		if len(s.state.SolvedCategoryIDs) == CategoryCount {
			s.state.Status = StatusWon
			s.state.EndTime = s.now()
		}
	}
	return res
}

// ResetGame discards the current state and starts over on the same puzzle
// with a newly shuffled grid. Always succeeds.
func (s *Session) ResetGame() {
	s.state = newGameState(s.puzzle, s.rng, s.now())
	s.selected = ""
	s.shaking = make(map[string]bool)
}

// ClearSelection drops the active selection without touching the grid,
// mistakes, or status.
func (s *Session) ClearSelection() {
	s.selected = ""
}

// ClearShake removes all shake feedback markers.
func (s *Session) ClearShake() {
	if len(s.shaking) == 0 {
		return
	}
	s.shaking = make(map[string]bool)
}

// SquareByID looks up a square currently on the grid.
func (s *Session) SquareByID(id string) (GridSquare, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return GridSquare{}, false
	}
	return s.state.Grid[idx], true
}

// CategoryByID looks up a category of the underlying puzzle.
func (s *Session) CategoryByID(id string) *Category {
	return s.puzzle.CategoryByID(id)
}

// IsSelected reports whether the square is the active selection.
func (s *Session) IsSelected(id string) bool {
	return s.selected != "" && s.selected == id
}

// SelectedID returns the id of the active selection, or "" when none.
func (s *Session) SelectedID() string {
	return s.selected
}

// IsShaking reports whether the square is marked for shake feedback from
// the last failed merge.
func (s *Session) IsShaking(id string) bool {
	return s.shaking[id]
}

func (s *Session) indexOf(id string) int {
	for i := range s.state.Grid {
		if s.state.Grid[i].ID == id {
			return i
		}
	}
	return -1
}

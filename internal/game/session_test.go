package game

import (
	"testing"
	"time"
)

func TestSelectAndDeselect(t *testing.T) {
	s := newTestSession(1)
	id := squareID("cat-fruits", 0)

	res := s.SelectSquare(id)
	if !res.Selected {
		t.Fatalf("first tap: got %+v, want Selected", res)
	}
	if !s.IsSelected(id) {
		t.Error("IsSelected() = false after selection")
	}

	res = s.SelectSquare(id)
	if !res.Deselected {
		t.Fatalf("second tap on same square: got %+v, want Deselected", res)
	}
	if s.SelectedID() != "" {
		t.Errorf("SelectedID() = %q after deselect, want empty", s.SelectedID())
	}
	if res.Merge != nil {
		t.Error("deselect attempted a merge")
	}
}

func TestSelectUnknownSquareIsNoOp(t *testing.T) {
	s := newTestSession(1)

	res := s.SelectSquare("no-such-square")
	if !res.Ignored {
		t.Fatalf("got %+v, want Ignored", res)
	}
	if s.State().Mistakes != 0 {
		t.Error("no-op selection counted a mistake")
	}
	if s.SelectedID() != "" {
		t.Error("no-op selection left a selection behind")
	}
}

func TestMismatchedMerge(t *testing.T) {
	s := newTestSession(1)
	fruit := squareID("cat-fruits", 0)
	country := squareID("cat-countries", 0)

	s.SelectSquare(fruit)
	res := s.SelectSquare(country)

	if res.Merge == nil {
		t.Fatal("second selection did not attempt a merge")
	}
	if res.Merge.Success {
		t.Fatal("cross-category merge succeeded")
	}
	if res.Merge.Reason != ReasonDifferentCategories {
		t.Errorf("Reason = %q, want %q", res.Merge.Reason, ReasonDifferentCategories)
	}

	state := s.State()
	if state.Mistakes != 1 {
		t.Errorf("Mistakes = %d, want 1", state.Mistakes)
	}
	if len(state.Grid) != TotalItems {
		t.Errorf("grid has %d squares after failed merge, want %d", len(state.Grid), TotalItems)
	}
	if !s.IsShaking(fruit) || !s.IsShaking(country) {
		t.Error("both squares of a failed merge should shake")
	}
	if s.SelectedID() != "" {
		t.Error("selection not cleared after failed merge")
	}
}

func TestMatchingMerge(t *testing.T) {
	s := newTestSession(1)
	first := squareID("cat-fruits", 3)
	second := squareID("cat-fruits", 7)

	s.SelectSquare(first)
	res := s.SelectSquare(second)

	if res.Merge == nil || !res.Merge.Success {
		t.Fatalf("same-category merge failed: %+v", res)
	}

	merged := res.Merge.Merged
	if merged == nil {
		t.Fatal("successful merge returned no merged square")
	}
	if merged.ID != first {
		t.Errorf("merged id = %q, want first-selected id %q", merged.ID, first)
	}
	if merged.CategoryID != "cat-fruits" {
		t.Errorf("merged CategoryID = %q, want cat-fruits", merged.CategoryID)
	}
	if len(merged.Items) != 2 {
		t.Fatalf("merged square has %d items, want 2", len(merged.Items))
	}
	// First square's items come before the second square's.
	if merged.Items[0] != "Fruits item 3" || merged.Items[1] != "Fruits item 7" {
		t.Errorf("merged items out of order: %v", merged.Items)
	}
	if merged.IsSolved {
		t.Error("two-item square marked solved")
	}
	if res.Merge.Solved != nil {
		t.Error("two-item merge reported a solved category")
	}

	state := s.State()
	if len(state.Grid) != TotalItems-1 {
		t.Errorf("grid has %d squares, want %d", len(state.Grid), TotalItems-1)
	}
	if state.ItemTotal() != TotalItems {
		t.Errorf("ItemTotal() = %d after merge, want %d", state.ItemTotal(), TotalItems)
	}
	if state.Mistakes != 0 {
		t.Errorf("Mistakes = %d after successful merge, want 0", state.Mistakes)
	}

	if _, ok := s.SquareByID(second); ok {
		t.Error("second square still on the grid after merge")
	}
}

func TestSolvingACategory(t *testing.T) {
	s := newTestSession(1)

	last := solveCategory(s, "cat-fruits")

	if last.Merged == nil || !last.Merged.IsSolved {
		t.Fatal("final merge did not produce a solved square")
	}
	if len(last.Merged.Items) != ItemsPerCategory {
		t.Errorf("solved square has %d items, want %d", len(last.Merged.Items), ItemsPerCategory)
	}
	if last.Solved == nil {
		t.Fatal("final merge did not report the resolved category")
	}
	if last.Solved.ID != "cat-fruits" {
		t.Errorf("resolved category = %q, want cat-fruits", last.Solved.ID)
	}

	state := s.State()
	if len(state.SolvedCategoryIDs) != 1 || state.SolvedCategoryIDs[0] != "cat-fruits" {
		t.Errorf("SolvedCategoryIDs = %v, want [cat-fruits]", state.SolvedCategoryIDs)
	}
	if state.Status != StatusPlaying {
		t.Errorf("Status = %q after one category, want %q", state.Status, StatusPlaying)
	}

	// The solved square ignores further taps.
	res := s.SelectSquare(squareID("cat-fruits", 0))
	if !res.Ignored {
		t.Errorf("tap on solved square: got %+v, want Ignored", res)
	}
}

func TestWinningTheGame(t *testing.T) {
	s := newTestSession(1)
	frozen := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	for _, cat := range s.Puzzle().Categories {
		solveCategory(s, cat.ID)
	}

	state := s.State()
	if state.Status != StatusWon {
		t.Fatalf("Status = %q after solving all categories, want %q", state.Status, StatusWon)
	}
	if len(state.SolvedCategoryIDs) != CategoryCount {
		t.Errorf("SolvedCategoryIDs has %d entries, want %d", len(state.SolvedCategoryIDs), CategoryCount)
	}
	if !state.EndTime.Equal(frozen) {
		t.Errorf("EndTime = %v, want %v", state.EndTime, frozen)
	}
	if len(state.Grid) != CategoryCount {
		t.Errorf("won grid has %d squares, want %d", len(state.Grid), CategoryCount)
	}
	if state.ItemTotal() != TotalItems {
		t.Errorf("ItemTotal() = %d, want %d", state.ItemTotal(), TotalItems)
	}

	// Terminal state: every further tap is a no-op.
	res := s.SelectSquare(squareID("cat-fruits", 0))
	if !res.Ignored {
		t.Errorf("tap after win: got %+v, want Ignored", res)
	}
}

func TestResetGame(t *testing.T) {
	s := newTestSession(1)

	// Dirty the state: one mistake, one merge, one solved category.
	s.SelectSquare(squareID("cat-fruits", 0))
	s.SelectSquare(squareID("cat-countries", 0))
	solveCategory(s, "cat-2")
	s.SelectSquare(squareID("cat-3", 0))

	s.ResetGame()

	state := s.State()
	if len(state.Grid) != TotalItems {
		t.Errorf("reset grid has %d squares, want %d", len(state.Grid), TotalItems)
	}
	if state.Mistakes != 0 {
		t.Errorf("Mistakes = %d after reset, want 0", state.Mistakes)
	}
	if len(state.SolvedCategoryIDs) != 0 {
		t.Errorf("SolvedCategoryIDs = %v after reset, want empty", state.SolvedCategoryIDs)
	}
	if state.Status != StatusPlaying {
		t.Errorf("Status = %q after reset, want %q", state.Status, StatusPlaying)
	}
	if s.SelectedID() != "" {
		t.Error("selection survived reset")
	}
	for _, sq := range state.Grid {
		if len(sq.Items) != 1 {
			t.Fatalf("reset square %s has %d items, want 1", sq.ID, len(sq.Items))
		}
	}
}

func TestClearSelectionAndShake(t *testing.T) {
	s := newTestSession(1)

	s.SelectSquare(squareID("cat-fruits", 0))
	s.ClearSelection()
	if s.SelectedID() != "" {
		t.Error("ClearSelection() left a selection")
	}

	s.SelectSquare(squareID("cat-fruits", 0))
	s.SelectSquare(squareID("cat-countries", 0))
	if !s.IsShaking(squareID("cat-fruits", 0)) {
		t.Fatal("failed merge did not mark shake")
	}

	mistakes := s.State().Mistakes
	s.ClearShake()
	if s.IsShaking(squareID("cat-fruits", 0)) {
		t.Error("ClearShake() left a shake marker")
	}
	if s.State().Mistakes != mistakes {
		t.Error("ClearShake() changed the mistake counter")
	}
}

func TestNewTapClearsStaleShake(t *testing.T) {
	s := newTestSession(1)

	s.SelectSquare(squareID("cat-fruits", 0))
	s.SelectSquare(squareID("cat-countries", 0))
	if !s.IsShaking(squareID("cat-countries", 0)) {
		t.Fatal("failed merge did not mark shake")
	}

	s.SelectSquare(squareID("cat-3", 0))
	if s.IsShaking(squareID("cat-fruits", 0)) || s.IsShaking(squareID("cat-countries", 0)) {
		t.Error("next tap did not clear stale shake markers")
	}
}

func TestMistakesAreMonotonic(t *testing.T) {
	s := newTestSession(1)

	prev := 0
	for i := 0; i < 5; i++ {
		s.SelectSquare(squareID("cat-fruits", i))
		s.SelectSquare(squareID("cat-countries", i))

		m := s.State().Mistakes
		if m != prev+1 {
			t.Fatalf("attempt %d: Mistakes = %d, want %d", i, m, prev+1)
		}
		prev = m
	}

	// A successful merge leaves the counter alone.
	s.SelectSquare(squareID("cat-fruits", 0))
	s.SelectSquare(squareID("cat-fruits", 1))
	if s.State().Mistakes != prev {
		t.Errorf("Mistakes = %d after success, want %d", s.State().Mistakes, prev)
	}
}

func TestActionDeterminism(t *testing.T) {
	// Two sessions with the same seed and the same action script end up in
	// identical snapshots.
	script := func(s *Session) {
		s.SelectSquare(squareID("cat-fruits", 0))
		s.SelectSquare(squareID("cat-countries", 0)) // mistake
		solveCategory(s, "cat-4")
		s.SelectSquare(squareID("cat-5", 2))
		s.SelectSquare(squareID("cat-5", 8)) // pair
		s.SelectSquare(squareID("cat-6", 1))
	}

	a := newTestSession(777)
	b := newTestSession(777)
	script(a)
	script(b)

	snapA := a.Snapshot()
	snapB := b.Snapshot()

	if snapA.Mistakes != snapB.Mistakes {
		t.Errorf("Mistakes mismatch: %d vs %d", snapA.Mistakes, snapB.Mistakes)
	}
	if snapA.SquareCount != snapB.SquareCount {
		t.Errorf("SquareCount mismatch: %d vs %d", snapA.SquareCount, snapB.SquareCount)
	}
	if snapA.SelectedID != snapB.SelectedID {
		t.Errorf("SelectedID mismatch: %q vs %q", snapA.SelectedID, snapB.SelectedID)
	}
	for i := range snapA.GridIDs {
		if snapA.GridIDs[i] != snapB.GridIDs[i] {
			t.Fatalf("GridIDs diverge at %d: %q vs %q", i, snapA.GridIDs[i], snapB.GridIDs[i])
		}
	}
}

func TestItemTotalInvariantUnderPlay(t *testing.T) {
	s := newTestSession(9)

	// Interleave successes, failures, deselects, and no-ops; the item
	// total must hold at 100 throughout.
	ops := []string{
		squareID("cat-fruits", 0), squareID("cat-fruits", 1),
		squareID("cat-countries", 2), squareID("cat-3", 2),
		squareID("cat-4", 4), squareID("cat-4", 4),
		squareID("cat-fruits", 0), squareID("cat-fruits", 2),
		"bogus-id",
		squareID("cat-9", 9), squareID("cat-9", 0),
	}
	for _, id := range ops {
		s.SelectSquare(id)
		if got := s.State().ItemTotal(); got != TotalItems {
			t.Fatalf("ItemTotal() = %d after selecting %s, want %d", got, id, TotalItems)
		}
	}
}

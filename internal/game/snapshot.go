package game

// Snapshot captures the observable session state for determinism testing.
// Two sessions created from the same puzzle and seed and driven by the
// same action sequence produce equal snapshots.
type Snapshot struct {
	PuzzleID         string
	GridIDs          []string // grid order, one id per square
	SquareCount      int
	ItemTotal        int
	Mistakes         int
	SolvedCategories []string
	Status           Status
	SelectedID       string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	ids := make([]string, len(s.state.Grid))
	for i, sq := range s.state.Grid {
		ids[i] = sq.ID
	}

	solved := make([]string, len(s.state.SolvedCategoryIDs))
	copy(solved, s.state.SolvedCategoryIDs)

	return Snapshot{
		PuzzleID:         s.state.PuzzleID,
		GridIDs:          ids,
		SquareCount:      len(s.state.Grid),
		ItemTotal:        s.state.ItemTotal(),
		Mistakes:         s.state.Mistakes,
		SolvedCategories: solved,
		Status:           s.state.Status,
		SelectedID:       s.selected,
	}
}

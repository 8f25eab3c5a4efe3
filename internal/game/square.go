package game

// GridSquare is one cell on the board. A fresh grid holds 100 singleton
// squares; merging replaces two squares with one that carries both item
// lists. The id stays stable across merges: the merged square keeps the id
// of the first-selected square, so renderers can track cells across frames.
type GridSquare struct {
	ID         string
	Items      []string
	CategoryID string
	IsSolved   bool
}

// ItemCount returns the number of items in the square.
func (s GridSquare) ItemCount() int {
	return len(s.Items)
}

// Label returns the display text for the square: the first item, which for
// merged squares acts as the cluster's anchor.
func (s GridSquare) Label() string {
	if len(s.Items) == 0 {
		return ""
	}
	return s.Items[0]
}

// UnsolvedSquares returns the squares of the grid whose category has not
// been fully assembled yet. Pure filter, input order preserved.
func UnsolvedSquares(grid []GridSquare) []GridSquare {
	out := make([]GridSquare, 0, len(grid))
	for _, sq := range grid {
		if !sq.IsSolved {
			out = append(out, sq)
		}
	}
	return out
}

// SolvedSquares returns the squares of the grid that hold a complete
// category. Pure filter, input order preserved.
func SolvedSquares(grid []GridSquare) []GridSquare {
	out := make([]GridSquare, 0, CategoryCount)
	for _, sq := range grid {
		if sq.IsSolved {
			out = append(out, sq)
		}
	}
	return out
}

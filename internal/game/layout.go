package game

import "sort"

// Row-packing thresholds. A row closes once it reaches the target, and a
// square never joins a row it would push past the ceiling. Both are
// overridable through the app config.
const (
	DefaultTargetItemsPerRow = 8
	DefaultMaxItemsPerRow    = 10
)

// LayoutRow is one display row of squares. Width fractions within a row
// sum to 1, so rendering each square at Items/TotalItems of the row width
// fills it with no gaps.
type LayoutRow struct {
	Squares    []GridSquare
	TotalItems int
}

// WidthFraction returns the share of the row's width the i-th square
// should occupy.
func (r LayoutRow) WidthFraction(i int) float64 {
	if r.TotalItems == 0 || i < 0 || i >= len(r.Squares) {
		return 0
	}
	return float64(r.Squares[i].ItemCount()) / float64(r.TotalItems)
}

// PackIntoRows arranges the given unsolved squares into display rows using
// the default thresholds.
func PackIntoRows(squares []GridSquare) []LayoutRow {
	return PackRows(squares, DefaultTargetItemsPerRow, DefaultMaxItemsPerRow)
}

// PackRows greedily packs squares into rows. Squares are taken largest
// first (stable on ties) so big clusters claim whole rows instead of
// fragmenting the tail. A pure function: the same input always yields the
// same rows, and the input slice is not modified.
func PackRows(squares []GridSquare, target, max int) []LayoutRow {
	if len(squares) == 0 {
		return nil
	}
	if target <= 0 {
		target = DefaultTargetItemsPerRow
	}
	if max < target {
		max = target
	}

	sorted := make([]GridSquare, len(squares))
	copy(sorted, squares)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ItemCount() > sorted[j].ItemCount()
	})

	var rows []LayoutRow
	var current LayoutRow

	for _, sq := range sorted {
		n := sq.ItemCount()
		if len(current.Squares) > 0 && (current.TotalItems+n > max || current.TotalItems >= target) {
			rows = append(rows, current)
			current = LayoutRow{}
		}
		current.Squares = append(current.Squares, sq)
		current.TotalItems += n
	}

	if len(current.Squares) > 0 {
		rows = append(rows, current)
	}
	return rows
}

package game

import "time"

// Status describes where a play session is in its lifecycle.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
)

// GameState is the mutable snapshot of one play session. The Session owns
// it exclusively; readers get copies and must not hold on to the slices
// across actions.
type GameState struct {
	PuzzleID          string
	Grid              []GridSquare
	Mistakes          int
	SolvedCategoryIDs []string
	Status            Status
	StartTime         time.Time
	EndTime           time.Time // zero until the session is won
}

// ItemTotal returns the summed item count across the grid. It is 100 for
// every reachable state: merging moves items between squares, never drops
// them.
func (s GameState) ItemTotal() int {
	total := 0
	for _, sq := range s.Grid {
		total += len(sq.Items)
	}
	return total
}

// Won reports whether all ten categories have been assembled.
func (s GameState) Won() bool {
	return s.Status == StatusWon
}

// Duration returns the elapsed play time: up to now while playing, frozen
// at EndTime once won.
func (s GameState) Duration(now time.Time) time.Duration {
	if !s.EndTime.IsZero() {
		return s.EndTime.Sub(s.StartTime)
	}
	return now.Sub(s.StartTime)
}

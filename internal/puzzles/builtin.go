package puzzles

import (
	_ "embed"
	"fmt"

	"github.com/Will-Nollert/clusters/internal/catalog"
)

//go:embed builtin/2026-06.yaml
var builtinJune2026 []byte

// DefaultPuzzleID is the id of the embedded puzzle used when the player
// does not pick one.
const DefaultPuzzleID = "classic-2026-06"

func init() {
	p, err := Parse(builtinJune2026)
	if err != nil {
		panic(fmt.Sprintf("puzzles: embedded puzzle is malformed: %v", err))
	}
	catalog.Register(p)
}

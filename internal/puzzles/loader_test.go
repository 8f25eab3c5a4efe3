package puzzles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/game"
)

func TestEmbeddedPuzzleParses(t *testing.T) {
	p, err := Parse(builtinJune2026)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if p.ID != DefaultPuzzleID {
		t.Errorf("embedded puzzle id = %q, want %q", p.ID, DefaultPuzzleID)
	}
	if len(p.Categories) != game.CategoryCount {
		t.Errorf("embedded puzzle has %d categories, want %d", len(p.Categories), game.CategoryCount)
	}
}

func TestEmbeddedPuzzleRegistered(t *testing.T) {
	// The init() in builtin.go should have registered it.
	if !catalog.Exists(DefaultPuzzleID) {
		t.Fatalf("puzzle %q not registered at init", DefaultPuzzleID)
	}

	p, err := catalog.Get(DefaultPuzzleID)
	if err != nil {
		t.Fatalf("catalog.Get() failed: %v", err)
	}
	if p.Month != "2026-06" {
		t.Errorf("Month = %q, want 2026-06", p.Month)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("id: partial\nmonth: oops")); err == nil {
		t.Error("Parse() accepted a puzzle with no categories")
	}
	if _, err := Parse([]byte("{not yaml")); err == nil {
		t.Error("Parse() accepted invalid YAML")
	}
}

func TestLoadAllSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()

	// One good file (a copy of the embedded puzzle) and one broken one.
	if err := os.WriteFile(filepath.Join(dir, "good.yaml"), builtinJune2026, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("nope: [whatever"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a puzzle"), 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(loaded) != 1 {
		t.Fatalf("LoadAll() returned %d puzzles, want 1", len(loaded))
	}
	if loaded[0].ID != DefaultPuzzleID {
		t.Errorf("loaded puzzle id = %q, want %q", loaded[0].ID, DefaultPuzzleID)
	}
}

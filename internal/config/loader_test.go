package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and (very likely) no user config in CI: the embedded
	// YAML should provide the documented defaults when parsed directly.
	cfg := Default()

	if cfg.Layout.TargetItemsPerRow != 8 {
		t.Errorf("TargetItemsPerRow = %d, want 8", cfg.Layout.TargetItemsPerRow)
	}
	if cfg.Layout.MaxItemsPerRow != 10 {
		t.Errorf("MaxItemsPerRow = %d, want 10", cfg.Layout.MaxItemsPerRow)
	}
	if cfg.Board.ShakeDuration() != 500*time.Millisecond {
		t.Errorf("ShakeDuration() = %v, want 500ms", cfg.Board.ShakeDuration())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := "layout:\n  target_items_per_row: 6\n  max_items_per_row: 7\nboard:\n  show_timer: false\n  shake_duration_ms: 250\n"
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Layout.TargetItemsPerRow != 6 {
		t.Errorf("TargetItemsPerRow = %d, want 6", cfg.Layout.TargetItemsPerRow)
	}
	if cfg.Layout.MaxItemsPerRow != 7 {
		t.Errorf("MaxItemsPerRow = %d, want 7", cfg.Layout.MaxItemsPerRow)
	}
	if cfg.Board.ShowTimer {
		t.Error("ShowTimer = true, want false")
	}
	if cfg.Board.ShakeDuration() != 250*time.Millisecond {
		t.Errorf("ShakeDuration() = %v, want 250ms", cfg.Board.ShakeDuration())
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestShakeDurationFallback(t *testing.T) {
	b := BoardConfig{ShakeDurationMS: 0}
	if b.ShakeDuration() != 500*time.Millisecond {
		t.Errorf("ShakeDuration() with zero value = %v, want 500ms", b.ShakeDuration())
	}
}

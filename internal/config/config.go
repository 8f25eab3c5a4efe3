// Package config provides YAML-based configuration for the clusters app:
// layout thresholds and board display options.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Board  BoardConfig  `yaml:"board"`
}

// LayoutConfig tunes the row-packing thresholds.
type LayoutConfig struct {
	TargetItemsPerRow int `yaml:"target_items_per_row"`
	MaxItemsPerRow    int `yaml:"max_items_per_row"`
}

// BoardConfig tunes the board display.
type BoardConfig struct {
	ShowTimer       bool `yaml:"show_timer"`
	ShowMistakes    bool `yaml:"show_mistakes"`
	ShakeDurationMS int  `yaml:"shake_duration_ms"`
}

// ShakeDuration returns the shake feedback duration as a time.Duration.
func (b BoardConfig) ShakeDuration() time.Duration {
	if b.ShakeDurationMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(b.ShakeDurationMS) * time.Millisecond
}

// Package config provides YAML-based game configuration loading and
// difficulty tier management for the hot/cold game.
package config

import (
	"fmt"
)

// HotColdConfig contains all configuration for the hot/cold game.
type HotColdConfig struct {
	ArenaSize     int          `yaml:"arena_size"`
	TickRate      int          `yaml:"tick_rate"`
	OverlapMargin int          `yaml:"overlap_margin"`
	ClampMovement bool         `yaml:"clamp_movement"`
	BannerTicks   int          `yaml:"banner_ticks"`
	Tiers         []TierConfig `yaml:"tiers"`
	Assets        AssetsConfig `yaml:"assets"`

	// Source records where the configuration was loaded from.
	Source string `yaml:"-"`
}

// TierConfig defines one difficulty tier. Radius and Step are in arena units.
type TierConfig struct {
	Name   string `yaml:"name"`
	Radius int    `yaml:"radius"`
	Step   int    `yaml:"step"`
	Budget int    `yaml:"budget"` // Max moves to advance; 0 = unlimited
}

// AssetsConfig names the optional audio resources and how to play them.
type AssetsConfig struct {
	Music       string `yaml:"music"`
	Celebration string `yaml:"celebration"`
	Player      string `yaml:"player"` // Command line; the asset path is appended
	Volume      int    `yaml:"volume"` // 0-100
}

// ConfigurationError reports a configuration that the game cannot run with,
// such as an arena too small for the hidden marker to be placed.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that every tier can be played on the configured arena.
// The arena must exceed four radii, otherwise no target position can avoid
// the start position.
func (c HotColdConfig) Validate() error {
	if c.ArenaSize <= 0 {
		return invalid("arena_size", "must be positive, got %d", c.ArenaSize)
	}
	if c.TickRate <= 0 {
		return invalid("tick_rate", "must be positive, got %d", c.TickRate)
	}
	if c.OverlapMargin < 0 {
		return invalid("overlap_margin", "must not be negative, got %d", c.OverlapMargin)
	}
	if c.BannerTicks < 0 {
		return invalid("banner_ticks", "must not be negative, got %d", c.BannerTicks)
	}
	if c.Assets.Volume < 0 || c.Assets.Volume > 100 {
		return invalid("assets.volume", "must be within 0-100, got %d", c.Assets.Volume)
	}
	if len(c.Tiers) == 0 {
		return invalid("tiers", "at least one tier is required")
	}

	for i, t := range c.Tiers {
		field := fmt.Sprintf("tiers[%d]", i)
		switch {
		case t.Radius <= 0:
			return invalid(field+".radius", "must be positive, got %d", t.Radius)
		case t.Step <= 0:
			return invalid(field+".step", "must be positive, got %d", t.Step)
		case t.Budget < 0:
			return invalid(field+".budget", "must not be negative, got %d", t.Budget)
		case c.ArenaSize <= 4*t.Radius:
			return invalid("arena_size", "%d is too small for radius %d of %s (need more than %d)",
				c.ArenaSize, t.Radius, t.DisplayName(i+1), 4*t.Radius)
		case 2*t.Radius <= c.OverlapMargin:
			return invalid(field+".radius", "radius %d can never overlap with margin %d", t.Radius, c.OverlapMargin)
		case t.Step/2 >= 2*t.Radius-c.OverlapMargin:
			return invalid(field+".step", "step %d leaves targets out of reach (found within %d)",
				t.Step, 2*t.Radius-c.OverlapMargin)
		}
	}

	return nil
}

// DisplayName returns the tier name, or "Level N" when unnamed.
func (t TierConfig) DisplayName(level int) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("Level %d", level)
}

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the loaded configuration untouched.
type Overrides struct {
	ArenaSize int
	TickRate  int
}

// ApplyOverrides modifies the config with non-zero override values.
func ApplyOverrides(cfg *HotColdConfig, o Overrides) {
	if o.ArenaSize > 0 {
		cfg.ArenaSize = o.ArenaSize
	}
	if o.TickRate > 0 {
		cfg.TickRate = o.TickRate
	}
}

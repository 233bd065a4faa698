package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHotColdConfig().Validate(); err != nil {
		t.Fatalf("DefaultHotColdConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg HotColdConfig
	if err := yaml.Unmarshal(defaultHotColdYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultHotColdConfig()
	if cfg.ArenaSize != want.ArenaSize || cfg.TickRate != want.TickRate {
		t.Errorf("arena/tick = %d/%d, expected %d/%d", cfg.ArenaSize, cfg.TickRate, want.ArenaSize, want.TickRate)
	}
	if cfg.OverlapMargin != want.OverlapMargin || cfg.ClampMovement != want.ClampMovement {
		t.Errorf("margin/clamp = %d/%v, expected %d/%v", cfg.OverlapMargin, cfg.ClampMovement, want.OverlapMargin, want.ClampMovement)
	}
	if !reflect.DeepEqual(cfg.Tiers, want.Tiers) {
		t.Errorf("tiers = %+v, expected %+v", cfg.Tiers, want.Tiers)
	}
	if cfg.Assets.Player != want.Assets.Player || cfg.Assets.Volume != want.Assets.Volume {
		t.Errorf("assets = %+v, expected player %q volume %d", cfg.Assets, want.Assets.Player, want.Assets.Volume)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HotColdConfig)
		field  string
	}{
		{"zero arena", func(c *HotColdConfig) { c.ArenaSize = 0 }, "arena_size"},
		{"arena exactly four radii", func(c *HotColdConfig) { c.ArenaSize = 200 }, "arena_size"},
		{"zero tick rate", func(c *HotColdConfig) { c.TickRate = 0 }, "tick_rate"},
		{"negative margin", func(c *HotColdConfig) { c.OverlapMargin = -1 }, "overlap_margin"},
		{"negative banner", func(c *HotColdConfig) { c.BannerTicks = -1 }, "banner_ticks"},
		{"volume too loud", func(c *HotColdConfig) { c.Assets.Volume = 101 }, "assets.volume"},
		{"no tiers", func(c *HotColdConfig) { c.Tiers = nil }, "tiers"},
		{"zero radius", func(c *HotColdConfig) { c.Tiers[1].Radius = 0 }, "tiers[1].radius"},
		{"zero step", func(c *HotColdConfig) { c.Tiers[2].Step = 0 }, "tiers[2].step"},
		{"negative budget", func(c *HotColdConfig) { c.Tiers[0].Budget = -3 }, "tiers[0].budget"},
		{"radius never overlaps", func(c *HotColdConfig) { c.Tiers[3].Radius = 5 }, "tiers[3].radius"},
		{"step skips over targets", func(c *HotColdConfig) { c.Tiers[3].Step = 20 }, "tiers[3].step"},
		{"step half equals threshold", func(c *HotColdConfig) { c.Tiers[3].Step = 8 }, "tiers[3].step"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHotColdConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, expected *ConfigurationError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", cfgErr.Field, tc.field)
			}
			if !strings.HasPrefix(err.Error(), "config: invalid ") {
				t.Errorf("Error() = %q, expected config prefix", err.Error())
			}
		})
	}
}

func TestValidateSmallestArena(t *testing.T) {
	cfg := DefaultHotColdConfig()
	cfg.ArenaSize = 201 // just over 4 * 50
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil for arena 201", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotcold.yaml")
	data := []byte("arena_size: 400\ntiers:\n  - radius: 30\n    step: 15\n    budget: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ArenaSize != 400 {
		t.Errorf("ArenaSize = %d, expected 400", cfg.ArenaSize)
	}
	if cfg.TickRate != 15 {
		t.Errorf("TickRate = %d, expected default 15 to survive", cfg.TickRate)
	}
	if len(cfg.Tiers) != 1 || cfg.Tiers[0].Step != 15 {
		t.Errorf("Tiers = %+v, expected the single file tier", cfg.Tiers)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena_size: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("tiers: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err == nil {
		t.Error("Load() with an empty tier list should fail")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultHotColdConfig()
	ApplyOverrides(&cfg, Overrides{})
	if cfg.ArenaSize != 800 || cfg.TickRate != 15 {
		t.Errorf("zero overrides changed config: %d/%d", cfg.ArenaSize, cfg.TickRate)
	}

	ApplyOverrides(&cfg, Overrides{ArenaSize: 600, TickRate: 30})
	if cfg.ArenaSize != 600 || cfg.TickRate != 30 {
		t.Errorf("overrides not applied: %d/%d", cfg.ArenaSize, cfg.TickRate)
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/hotcold.yaml
var defaultHotColdYAML []byte

// DefaultHotColdConfig returns the built-in configuration: an 800 unit arena,
// 15 ticks per second and four tiers shrinking from radius 50 to 7.
func DefaultHotColdConfig() HotColdConfig {
	return HotColdConfig{
		ArenaSize:     800,
		TickRate:      15,
		OverlapMargin: 10,
		ClampMovement: true,
		BannerTicks:   30,
		Tiers: []TierConfig{
			{Name: "Level 1", Radius: 50, Step: 50, Budget: 10},
			{Name: "Level 2", Radius: 25, Step: 25, Budget: 20},
			{Name: "Level 3", Radius: 10, Step: 10, Budget: 50},
			{Name: "Level 4", Radius: 7, Step: 7, Budget: 0},
		},
		Assets: AssetsConfig{
			Player: "ffplay -nodisp -autoexit -loglevel quiet -volume {volume}",
			Volume: 50,
		},
		Source: "built-in",
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `hotcold tiers --dump`.
func DefaultYAML() []byte {
	return defaultHotColdYAML
}

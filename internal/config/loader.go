package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	configRelPath   = "hotcold/hotcold.yaml"
	localConfigPath = "configs/hotcold.yaml"
)

// Load loads the hot/cold configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/hotcold/hotcold.yaml ->
// ./configs/hotcold.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is not
// validated; call Validate after applying overrides.
func Load(customPath string) (HotColdConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userCfgPath, err := xdg.SearchConfigFile(configRelPath); err == nil {
		return loadFile(userCfgPath)
	}

	if _, err := os.Stat(localConfigPath); err == nil {
		return loadFile(localConfigPath)
	}

	cfg := DefaultHotColdConfig()
	if err := yaml.Unmarshal(defaultHotColdYAML, &cfg); err != nil {
		return DefaultHotColdConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// loadFile reads one YAML file on top of the built-in defaults.
func loadFile(path string) (HotColdConfig, error) {
	cfg := DefaultHotColdConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// parse decodes data over cfg. An empty document leaves cfg unchanged.
func parse(data []byte, cfg *HotColdConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if len(cfg.Tiers) == 0 {
		return errors.New("tiers list is empty")
	}
	return nil
}

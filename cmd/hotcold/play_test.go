package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
	"github.com/vovakirdan/tui-hotcold/internal/platform/audio"
	"github.com/vovakirdan/tui-hotcold/internal/platform/tui"
)

func withFlags(t *testing.T, cfgPath string, arena, fps int) {
	t.Helper()
	oldConfig, oldArena, oldFPS := flagConfig, flagArena, flagFPS
	flagConfig, flagArena, flagFPS = cfgPath, arena, fps
	t.Cleanup(func() {
		flagConfig, flagArena, flagFPS = oldConfig, oldArena, oldFPS
	})
}

func TestLoadGameConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotcold.yaml")
	if err := os.WriteFile(path, []byte("arena_size: 600\ntick_rate: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFlags(t, path, 1000, 30)

	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.ArenaSize != 1000 || cfg.TickRate != 30 {
		t.Errorf("arena/tick = %d/%d, expected flag values 1000/30", cfg.ArenaSize, cfg.TickRate)
	}
}

func TestLoadGameConfigRejectsSmallArena(t *testing.T) {
	withFlags(t, "", 200, 0)

	_, err := loadGameConfig()
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "arena_size" {
		t.Errorf("loadGameConfig() = %v, expected arena_size ConfigurationError", err)
	}
}

func TestPlayOnceUnknownMode(t *testing.T) {
	_, err := playOnce("tetris", config.DefaultHotColdConfig(), core.RuntimeConfig{}, tui.Options{})
	if err == nil {
		t.Error("Expected an error for an unknown mode")
	}
}

func TestReportAudioProblems(t *testing.T) {
	var out bytes.Buffer
	reportAudioProblems(&out, []error{
		&audio.AssetError{Kind: "music", Path: "/missing/theme.mp3", Err: os.ErrNotExist},
		&audio.AssetError{Kind: "celebration", Err: audio.ErrNotConfigured},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d warnings, expected 1: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "Warning: ") || !strings.Contains(lines[0], "/missing/theme.mp3") {
		t.Errorf("warning = %q", lines[0])
	}
}

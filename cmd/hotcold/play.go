package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hotcold/internal/config"
	"github.com/vovakirdan/tui-hotcold/internal/core"
	"github.com/vovakirdan/tui-hotcold/internal/logging"
	"github.com/vovakirdan/tui-hotcold/internal/platform/audio"
	"github.com/vovakirdan/tui-hotcold/internal/platform/tui"
	"github.com/vovakirdan/tui-hotcold/internal/registry"
)

const defaultGameID = "hotcold"

var (
	flagArena int
	flagTier  int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start a game. Without arguments a menu asks for the mode and the
starting level; a mode argument or --tier starts playing right away.

Controls:
  Arrows/WASD  - Move
  H            - Back to the centre (not counted)
  R            - New round at the same level
  V            - Reveal the hidden marker
  Ctrl+S       - Copy the screen to the clipboard
  Esc/B        - Back to the menu
  Q/Ctrl+C     - Quit

Examples:
  hotcold play
  hotcold play --tier 2 --seed 42
  hotcold play hotcold_free --tier 4
  hotcold play --arena 400 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagArena, "arena", 0, "Arena size in game units (0 = from config)")
	playCmd.Flags().IntVar(&flagTier, "tier", 0, "Starting level, skips the menu (0 = choose in menu)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, logFile, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logFile.Close()
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	logger.Info("config loaded",
		"source", gameCfg.Source,
		"arena", gameCfg.ArenaSize,
		"tick_rate", gameCfg.TickRate,
		"tiers", len(gameCfg.Tiers),
	)

	if flagTier < 0 || flagTier > len(gameCfg.Tiers) {
		return fmt.Errorf("--tier must be within 1-%d, got %d", len(gameCfg.Tiers), flagTier)
	}

	var sound tui.Sound
	if !flagMute {
		jukebox := audio.New(gameCfg.Assets, logger)
		defer jukebox.Close()
		reportAudioProblems(os.Stderr, jukebox.Problems())
		sound = jukebox
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = gameCfg.TickRate
	cfg.Seed = flagSeed
	cfg.StartTier = flagTier
	opts := tui.Options{Logger: logger, Sound: sound}

	// A mode or a tier on the command line plays one session directly
	if len(args) == 1 || flagTier > 0 {
		gameID := defaultGameID
		if len(args) == 1 {
			gameID = args[0]
		}
		_, err := playOnce(gameID, gameCfg, cfg, opts)
		return err
	}

	return menuLoop(gameCfg, cfg, opts, logger)
}

// reportAudioProblems prints a warning for every asset that was configured
// but cannot be played. Unset assets are skipped.
func reportAudioProblems(w io.Writer, problems []error) {
	for _, p := range problems {
		if errors.Is(p, audio.ErrNotConfigured) {
			continue
		}
		fmt.Fprintf(w, "Warning: %v\n", p)
	}
}

// loadGameConfig loads the config file and applies command-line overrides.
func loadGameConfig() (config.HotColdConfig, error) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return gameCfg, err
	}
	config.ApplyOverrides(&gameCfg, config.Overrides{
		ArenaSize: flagArena,
		TickRate:  flagFPS,
	})
	if err := gameCfg.Validate(); err != nil {
		return gameCfg, err
	}
	return gameCfg, nil
}

func playOnce(gameID string, gameCfg config.HotColdConfig, cfg core.RuntimeConfig, opts tui.Options) (tui.Result, error) {
	if !registry.Exists(gameID) {
		return tui.Result{Config: cfg}, fmt.Errorf("unknown game mode %q (run 'hotcold list' to see modes)", gameID)
	}
	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		return tui.Result{Config: cfg}, err
	}
	return tui.Run(game, cfg, opts)
}

// menuLoop alternates between the level menu and game sessions until the
// player quits. Rounds are remembered for the rounds table.
func menuLoop(gameCfg config.HotColdConfig, cfg core.RuntimeConfig, opts tui.Options, logger *log.Logger) error {
	var session []core.RoundResult

	for {
		menuResult, err := tui.RunMenu(gameCfg, cfg, len(session) > 0)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsRounds {
			goBack, err := tui.RunRounds(session, gameCfg, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		cfg.StartTier = menuResult.Tier
		result, err := playOnce(menuResult.GameID, gameCfg, cfg, opts)
		session = append(session, result.Rounds...)
		cfg = result.Config
		if err != nil {
			return err
		}

		logger.Info("session ended", "game", menuResult.GameID, "rounds", len(result.Rounds), "complete", result.Status.Complete)
		if !result.Back {
			return nil
		}
	}
}

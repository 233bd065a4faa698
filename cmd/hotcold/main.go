// hotcold is a terminal hot/cold locator game: find the hidden marker
// guided only by whether each move made you warmer or colder.
//
// Usage:
//
//	hotcold play [mode]      - Pick a level in the menu, or play a mode directly
//	hotcold list             - List game modes
//	hotcold tiers            - Show the configured difficulty levels
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: XDG config, ./configs, built-in)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Set RNG seed for reproducible target placement
//	--log-file <path>   - Log file (default: $XDG_STATE_HOME/hotcold/hotcold.log)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-hotcold/internal/games/hotcold"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hotcold",
	Short: "Hot/Cold - find the hidden marker in your terminal",
	Long: `Hot/Cold is a terminal locator game. A marker is hidden somewhere in
the field; move yours and watch its colour: red means you got closer,
blue means you drifted away. Find it within the move budget to reach
the next, smaller level.

Available commands:
  play     - Play (menu, or a mode directly)
  list     - Show game modes
  tiers    - Show difficulty levels

Examples:
  hotcold play
  hotcold play --tier 3
  hotcold play hotcold_free --arena 600
  hotcold tiers --config ./my-hotcold.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: XDG state dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tiersCmd)
}

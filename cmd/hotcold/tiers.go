package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hotcold/internal/config"
)

var flagDump bool

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty levels",
	Long: `Prints the levels of the loaded configuration: marker radius, step
per move and the move budget for reaching the next level.

With --dump the built-in configuration is printed as YAML, ready to be
saved and edited.

Examples:
  hotcold tiers
  hotcold tiers --config ./my-hotcold.yaml
  hotcold tiers --dump > ~/.config/hotcold/hotcold.yaml`,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the built-in config YAML")
}

func runTiers(_ *cobra.Command, _ []string) error {
	if flagDump {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	ladder := config.NewLadder(gameCfg.Tiers)

	fmt.Printf("Config: %s (arena %d, %d ticks/s)\n\n", gameCfg.Source, gameCfg.ArenaSize, gameCfg.TickRate)
	fmt.Printf("  %-3s  %-10s  %6s  %4s  %s\n", "#", "Name", "Radius", "Step", "Budget")
	fmt.Printf("  %-3s  %-10s  %6s  %4s  %s\n", "-", "----", "------", "----", "------")
	for i := 1; i <= ladder.Len(); i++ {
		tier := ladder.Tier(i)
		budget := "no limit"
		if tier.Budget > 0 {
			budget = fmt.Sprintf("%d moves", tier.Budget)
		}
		if ladder.IsLast(i) {
			budget += ", last level"
		}
		fmt.Printf("  %-3d  %-10s  %6d  %4d  %s\n", i, ladder.Name(i), tier.Radius, tier.Step, budget)
	}
	return nil
}

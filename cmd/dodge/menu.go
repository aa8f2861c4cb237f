package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-dodge/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a rule profile, then play",
	Long: `Start in the profile picker.

Use arrow keys or j/k to navigate, Enter to play the selected profile.
After a game ends you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Q            - Quit

Examples:
  dodge menu
  dodge menu --fps 30
  dodge menu --config ./dodge.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend (see 'dodge backends')")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := mustLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	rt := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg, rt)
		if err != nil {
			logger.Error("menu failed", "error", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		rt = result.Config

		// Preselect the last profile played
		cfg.Profile = result.Profile

		score, err := playSession(cfg, result.Profile, rt, logger)
		if err != nil {
			logger.Error("game failed", "error", err)
			os.Exit(1)
		}
		printScore(score)

		// A fresh world each round unless the seed was pinned
		if flagSeed == 0 {
			rt.Seed = runtimeConfig().Seed
		}
	}
}

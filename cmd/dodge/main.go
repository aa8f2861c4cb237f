// dodge is a small arcade game: steer a fish between falling bubbles and
// eat the food that drifts down with them.
//
// Usage:
//
//	dodge play               - Play the configured profile
//	dodge menu               - Pick a rule profile interactively, then play
//	dodge profiles           - List rule profiles
//	dodge backends           - List display backends
//	dodge config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a YAML or INI config file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs here while a game is on screen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/bubble-dodge/internal/platform/term"
	_ "github.com/vovakirdan/bubble-dodge/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Bubble Dodge - dodge the bubbles, eat the food",
	Long: `Bubble Dodge puts you in control of a fish. Bubbles fall from the
surface; touching one ends the game. Food drifts down too: eat it to score.

Available commands:
  play      - Play a game with the configured profile
  menu      - Pick a rule profile, then play
  profiles  - List rule profiles
  backends  - List display backends
  config    - Print the effective configuration

Examples:
  dodge play
  dodge play --profile neglect
  dodge play --backend term --mute
  dodge menu --config ./dodge.ini
  dodge config > ~/.bubble-dodge/dodge.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or INI config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a game is on screen (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bubble-dodge/internal/platform/tui"
	"github.com/vovakirdan/bubble-dodge/internal/registry"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List rule profiles",
	Long:  `Shows the rule profiles defined by the active configuration.`,
	Args:  cobra.NoArgs,
	Run:   runProfiles,
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List display backends",
	Long:  `Shows the display backends compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration that 'play' would use, as YAML.
Redirect it to a file to start a custom configuration.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runProfiles(_ *cobra.Command, _ []string) {
	logger := mustLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	names := cfg.ProfileNames()
	maxIDLen := 2 // "ID" header
	for _, name := range names {
		maxIDLen = max(maxIDLen, len(name))
	}

	fmt.Println("Rule profiles:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Rules")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, name := range names {
		marker := ""
		if name == cfg.Profile {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, name, tui.Summary(cfg.Profiles[name]), marker)
	}
	fmt.Println()
	fmt.Println("Run 'dodge play --profile <id>' to play a profile.")
}

func runBackends(_ *cobra.Command, _ []string) {
	backends := registry.List()
	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	maxIDLen := 2
	for _, b := range backends {
		maxIDLen = max(maxIDLen, len(b.ID))
	}

	fmt.Println("Available backends:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}
	fmt.Println()
	fmt.Println("Run 'dodge play --backend <id>' to use a backend.")
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := mustLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Error("cannot encode config", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

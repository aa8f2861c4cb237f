package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/audio"
	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/game"
	"github.com/vovakirdan/bubble-dodge/internal/logging"
	"github.com/vovakirdan/bubble-dodge/internal/registry"
)

var (
	flagProfile string
	flagBackend string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game with the selected rule profile.

Controls:
  Click Play / Enter  - Start
  Arrows / WASD / HJKL - Swim
  Q / Esc / Ctrl+C     - Quit

Profiles (see 'dodge profiles'):
  classic  - A bubble ends the game
  neglect  - A bubble or a missed piece of food ends the game
  endless  - Nothing ends the game

Examples:
  dodge play
  dodge play --profile endless --seed 42
  dodge play --backend term
  dodge play --mute --log-file /tmp/dodge.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Rule profile (default: the config's profile)")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend (see 'dodge backends')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable background music")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := mustLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	score, err := playSession(cfg, flagProfile, runtimeConfig(), logger)
	if err != nil {
		logger.Error("game failed", "error", err)
		os.Exit(1)
	}
	printScore(score)
}

// mustLogger builds the stderr logger used before and after the UI.
func mustLogger() *log.Logger {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// loadConfig loads the configuration from --config or the search path.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if source == "" {
		source = "built-in"
	}
	logger.Debug("config loaded", "source", source, "profile", cfg.Profile)
	return cfg, nil
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// playSession loads the assets, starts the music and runs one game on the
// selected backend. It returns the final score.
func playSession(cfg config.Config, profile string, rt core.RuntimeConfig, logger *log.Logger) (int, error) {
	p, name, err := cfg.Select(profile)
	if err != nil {
		return 0, err
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return 0, err
	}

	bundle, err := assets.Load(cfg.Assets)
	if err != nil {
		var le *assets.LoadError
		if errors.As(err, &le) {
			logger.Error("required asset missing", "asset", le.Name, "kind", le.Kind, "path", le.Path)
		}
		return 0, err
	}
	for _, skipped := range bundle.Skipped {
		logger.Warn("optional asset skipped", "asset", skipped.Name, "kind", skipped.Kind, "error", skipped.Err)
	}

	sink := newSink(cfg.Audio, bundle, logger)
	defer sink.Close()
	if err := sink.Play(cfg.Audio.Loop, cfg.Audio.Volume); err != nil {
		logger.Warn("music disabled", "error", err)
	}

	uiLogger, closeLog, err := sessionLogger()
	if err != nil {
		return 0, err
	}
	defer closeLog()

	g := game.New(name, p, uiLogger)
	g.Reset(rt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting game", "profile", name, "backend", backend.ID(), "seed", rt.Seed)
	err = backend.Run(ctx, registry.Session{
		Game:    g,
		Runtime: rt,
		Assets:  bundle,
		Input:   cfg.Input,
		Logger:  uiLogger,
	})
	if err != nil {
		return g.State().Score, fmt.Errorf("%s backend: %w", backend.ID(), err)
	}
	return g.State().Score, nil
}

// newSink returns the music player, or a silent sink when music is muted,
// disabled or missing.
func newSink(cfg config.AudioConfig, bundle *assets.Bundle, logger *log.Logger) audio.Sink {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}
	}
	clip, ok := bundle.Audio[cfg.Asset]
	if !ok {
		logger.Debug("no music loaded", "asset", cfg.Asset)
		return audio.Nop{}
	}
	return audio.NewSpeakerSink(clip)
}

// sessionLogger returns the logger used while the UI owns the terminal.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(io.Writer(f), flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// printScore prints the final score once the UI has closed.
func printScore(score int) {
	color.New(color.FgHiCyan, color.Bold).Printf("Game Over! Score: %d\n", score)
}

// Package game wraps the simulation into the unit the platform runs: it
// owns one sim.Machine, logs what happens each tick, and draws frames.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/logging"
	"github.com/vovakirdan/bubble-dodge/internal/sim"
)

// Game runs one bubble dodge game under a rule profile.
type Game struct {
	id      string
	profile config.Profile
	machine *sim.Machine
	config  core.RuntimeConfig
	logger  *log.Logger
}

// New creates a game for the named profile. A nil logger discards output.
func New(id string, p config.Profile, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		id:      id,
		profile: p,
		logger:  logger,
	}
}

// ID returns the profile name.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name of the profile.
func (g *Game) Title() string {
	return g.profile.Title
}

// Profile returns the rule profile in use.
func (g *Game) Profile() config.Profile {
	return g.profile
}

// Reset starts a fresh game seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.machine = sim.NewMachine(g.profile, cfg.Seed)
	g.logger.Info("game reset",
		"profile", g.id,
		"phase", g.machine.Phase(),
		"seed", cfg.Seed,
	)
}

// Machine returns the running state machine.
func (g *Game) Machine() *sim.Machine {
	return g.machine
}

// PlayButtonCenter returns the centre of the menu button in field units.
// Keyboard backends press here when the player hits Enter.
func (g *Game) PlayButtonCenter() core.Vec2 {
	return sim.PlayButton(g.profile).Center()
}

// Step advances the game by one frame. elapsed is the wall time since the
// previous frame.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	ev := g.machine.Step(in, elapsed)
	g.logEvents(ev)
	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(ev sim.Events) {
	if ev.Started {
		g.logger.Info("phase changed", "from", sim.PhaseMenu, "to", sim.PhasePlaying)
	}
	if ev.Hazard != nil {
		g.logger.Debug("hazard spawned", "id", ev.Hazard.ID, "x", ev.Hazard.Pos.X, "speed", ev.Hazard.Vel.Y)
	}
	if ev.EdiblesSpawned > 0 {
		g.logger.Debug("edibles spawned", "count", ev.EdiblesSpawned, "live", g.machine.World().LiveEdibles())
	}
	for _, e := range ev.Collected {
		g.logger.Debug("edible collected", "id", e.ID, "score", g.machine.Score())
	}
	for _, e := range ev.Neglected {
		g.logger.Debug("edible left the field", "id", e.ID)
	}
	if ev.Hit != nil && !ev.Ended {
		g.logger.Debug("hazard passed through", "id", ev.Hit.ID)
	}
	if ev.Ended {
		g.logger.Info("phase changed", "from", sim.PhasePlaying, "to", sim.PhaseEnded)
		g.logger.Info("game over",
			"profile", g.id,
			"reason", ev.Reason,
			"score", g.machine.Score(),
			"ticks", g.machine.Ticks(),
		)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.machine.Score(),
		Menu:     g.machine.Phase() == sim.PhaseMenu,
		GameOver: g.machine.Phase() == sim.PhaseEnded,
	}
}

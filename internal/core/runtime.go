package core

// Fallbacks used when the platform cannot tell.
const (
	DefaultTickRate = 60
	DefaultScreenW  = 80
	DefaultScreenH  = 24
)

// RuntimeConfig holds the per-run settings the platform hands to a game:
// the display size hint, the tick rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 lets the CLI pick one from the clock
}

// DefaultConfig returns an 80x24, 60 tick per second configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Normalized replaces non-positive sizes and tick rates with the defaults.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the summary a backend needs after each step.
type GameState struct {
	Score    int
	Menu     bool // Waiting on the play button
	GameOver bool
}

// Running reports whether the simulation is still advancing.
func (s GameState) Running() bool {
	return !s.Menu && !s.GameOver
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}

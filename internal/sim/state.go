package sim

import (
	"time"

	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
)

// Phase is the game lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// PlayButton returns the menu button bounds for profile p: centred
// horizontally, with its bottom edge on the field's middle line.
func PlayButton(p config.Profile) core.Box {
	return core.Box{
		X: p.Field.Width/2 - p.Button.Width/2,
		Y: p.Field.Height/2 - p.Button.Height,
		W: p.Button.Width,
		H: p.Button.Height,
	}
}

// Machine owns the lifecycle of one game and sequences the systems into
// ticks: spawn, move, collide, score, terminal check.
type Machine struct {
	world  *World
	phase  Phase
	reason EndReason
	ticks  int
}

// NewMachine creates a game for profile p. It starts in the menu when the
// profile has one, otherwise it is already playing.
func NewMachine(p config.Profile, seed int64) *Machine {
	m := &Machine{
		world: NewWorld(p, seed),
		phase: PhaseMenu,
	}
	if !p.Rules.Menu {
		m.phase = PhasePlaying
	}
	return m
}

// World returns the simulation state. Callers must treat it as read-only.
func (m *Machine) World() *World {
	return m.world
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Reason returns why the game ended, or EndNone.
func (m *Machine) Reason() EndReason {
	return m.reason
}

// Ticks returns the number of simulation ticks run so far.
func (m *Machine) Ticks() int {
	return m.ticks
}

// Score returns the current score.
func (m *Machine) Score() int {
	return m.world.Score.Current()
}

// PlayButton returns the menu button bounds.
func (m *Machine) PlayButton() core.Box {
	return PlayButton(m.world.Profile)
}

// HandlePointer processes a pointer press in field coordinates. A press
// inside the play button while in the menu starts the game. Returns whether
// the phase changed.
func (m *Machine) HandlePointer(x, y float64) bool {
	if m.phase != PhaseMenu {
		return false
	}
	if !m.PlayButton().Contains(x, y) {
		return false
	}
	m.phase = PhasePlaying
	return true
}

// Step handles the frame's pointer presses, then runs one tick if the game
// is playing. elapsed is the wall time since the previous step; it feeds
// the hazard spawn timer and, in scaled timing, the movement delta.
// Step does nothing once the game has ended.
func (m *Machine) Step(in core.InputFrame, elapsed time.Duration) Events {
	var ev Events

	for _, p := range in.Presses {
		if m.HandlePointer(p.X, p.Y) {
			ev.Started = true
		}
	}

	if m.phase != PhasePlaying {
		return ev
	}

	m.tick(in, elapsed, &ev)
	return ev
}

func (m *Machine) tick(in core.InputFrame, elapsed time.Duration, ev *Events) {
	w := m.world
	rules := w.Profile.Rules
	dt := m.delta(elapsed)

	m.ticks++
	ev.Ticked = true

	// Spawn
	w.Elapse(elapsed)
	if h, ok := SpawnHazardIfDue(w); ok {
		ev.Hazard = &h
	}
	ev.EdiblesSpawned = SpawnEdiblesUpToCap(w)

	// Move
	MoveEntities(w, dt)
	MoveAvatar(w, in, dt)
	ev.HazardsExpired, ev.Neglected = ExpireEntities(w)

	// Collide
	if h, ok := CheckHazards(w); ok {
		ev.Hit = &h
		if rules.HazardLoss {
			m.end(EndHazard, ev)
			return
		}
	}
	ev.Collected = CollectEdibles(w)

	// Terminal check
	if rules.NeglectLoss && len(ev.Neglected) > 0 {
		m.end(EndNeglect, ev)
	}
}

// delta converts elapsed wall time to the movement multiplier.
func (m *Machine) delta(elapsed time.Duration) float64 {
	timing := m.world.Profile.Timing
	if timing.Mode == config.TimingScaled {
		if elapsed <= 0 {
			return 0
		}
		return elapsed.Seconds() * timing.ReferenceRate
	}
	return 1
}

func (m *Machine) end(reason EndReason, ev *Events) {
	m.phase = PhaseEnded
	m.reason = reason
	ev.Ended = true
	ev.Reason = reason
}

// Package sim implements the bubble dodge simulation: spawning, movement,
// collision, scoring and the Menu/Playing/Ended lifecycle.
//
// Every system is a plain function over a *World, the explicit simulation
// context. Machine sequences the systems into ticks. Nothing in this package
// draws, polls input or sleeps; the platform layer does that and feeds
// core.InputFrame values in.
package sim

import (
	"time"

	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
)

// World is the complete simulation state of one game.
type World struct {
	Profile config.Profile
	Width   float64
	Height  float64
	Rand    *RandomSource

	Avatar  Avatar
	Hazards []Hazard
	Edibles []Edible
	Score   ScoreTracker

	sinceHazard time.Duration // Time since the last hazard spawn
	nextID      int
}

// NewWorld creates an empty world for profile p with the avatar centred.
func NewWorld(p config.Profile, seed int64) *World {
	return &World{
		Profile: p,
		Width:   p.Field.Width,
		Height:  p.Field.Height,
		Rand:    NewRandomSource(seed),
		Avatar: Avatar{
			Pos:    core.Vec2{X: p.Field.Width / 2, Y: p.Field.Height / 2},
			Radius: p.Avatar.Radius,
			Facing: FacingLeft,
		},
		Hazards: make([]Hazard, 0, 16),
		Edibles: make([]Edible, 0, p.Edible.Cap),
	}
}

// Elapse advances the hazard spawn timer.
func (w *World) Elapse(d time.Duration) {
	if d > 0 {
		w.sinceHazard += d
	}
}

// SinceHazardSpawn returns the time since the last hazard was spawned.
func (w *World) SinceHazardSpawn() time.Duration {
	return w.sinceHazard
}

// LiveEdibles returns the number of edibles still in play.
func (w *World) LiveEdibles() int {
	return len(w.Edibles)
}

func (w *World) newID() int {
	w.nextID++
	return w.nextID
}

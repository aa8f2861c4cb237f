package sim

import "github.com/vovakirdan/bubble-dodge/internal/core"

// MoveEntities drifts every hazard and edible by its velocity scaled by dt.
func MoveEntities(w *World, dt float64) {
	for i := range w.Hazards {
		w.Hazards[i].Pos = w.Hazards[i].Pos.Add(w.Hazards[i].Vel.Scale(dt))
	}
	for i := range w.Edibles {
		w.Edibles[i].Pos = w.Edibles[i].Pos.Add(w.Edibles[i].Vel.Scale(dt))
	}
}

// MoveAvatar applies the held directions to the avatar and keeps its centre
// within [radius, dimension-radius] on both axes.
func MoveAvatar(w *World, in core.InputFrame, dt float64) {
	a := &w.Avatar
	step := w.Profile.Avatar.Speed * dt

	var d core.Vec2
	if in.Has(core.ActionLeft) {
		d.X -= step
		a.Facing = FacingLeft
	}
	if in.Has(core.ActionRight) {
		d.X += step
		a.Facing = FacingRight
	}
	if in.Has(core.ActionUp) {
		d.Y -= step
	}
	if in.Has(core.ActionDown) {
		d.Y += step
	}

	a.Pos = a.Pos.Add(d)
	a.Pos.X = core.ClampF(a.Pos.X, a.Radius, w.Width-a.Radius)
	a.Pos.Y = core.ClampF(a.Pos.Y, a.Radius, w.Height-a.Radius)
}

// ExpireEntities removes hazards and edibles that have fallen out of the
// field. Returns the number of hazards dropped and the edibles that left
// uncollected.
func ExpireEntities(w *World) (int, []Edible) {
	expired := 0
	liveHazards := w.Hazards[:0]
	for _, h := range w.Hazards {
		if below(h.Pos, h.Radius, w.Height) {
			expired++
			continue
		}
		liveHazards = append(liveHazards, h)
	}
	w.Hazards = liveHazards

	var neglected []Edible
	liveEdibles := w.Edibles[:0]
	for _, e := range w.Edibles {
		if below(e.Pos, e.Radius, w.Height) {
			neglected = append(neglected, e)
			continue
		}
		liveEdibles = append(liveEdibles, e)
	}
	w.Edibles = liveEdibles

	return expired, neglected
}

package sim

import "github.com/vovakirdan/bubble-dodge/internal/core"

// SpawnHazardIfDue creates one hazard at a random x just above the field
// once the spawn interval has elapsed, and resets the spawn timer.
// It reports the new hazard, if any.
func SpawnHazardIfDue(w *World) (Hazard, bool) {
	cfg := w.Profile.Hazard
	if w.sinceHazard < cfg.SpawnInterval {
		return Hazard{}, false
	}

	h := Hazard{
		ID:     w.newID(),
		Pos:    core.Vec2{X: w.Rand.Uniform(0, w.Width), Y: -cfg.Radius},
		Radius: cfg.Radius,
		Lethal: true,
	}
	h.Vel = core.Vec2{Y: w.Rand.Uniform(cfg.MinSpeed, cfg.MaxSpeed)}

	w.Hazards = append(w.Hazards, h)
	w.sinceHazard = 0
	return h, true
}

// SpawnEdiblesUpToCap tops the live edibles up to the configured cap.
// Returns how many were created.
func SpawnEdiblesUpToCap(w *World) int {
	cfg := w.Profile.Edible
	spawned := 0
	for len(w.Edibles) < cfg.Cap {
		e := Edible{
			ID:     w.newID(),
			Pos:    core.Vec2{X: w.Rand.Uniform(0, w.Width), Y: -cfg.Radius},
			Radius: cfg.Radius,
		}
		e.Vel = core.Vec2{Y: w.Rand.Uniform(cfg.MinSpeed, cfg.MaxSpeed)}
		w.Edibles = append(w.Edibles, e)
		spawned++
	}
	return spawned
}

package sim

// CheckHazards returns the first lethal hazard touching the avatar.
func CheckHazards(w *World) (Hazard, bool) {
	avatar := w.Avatar.Bounds()
	for _, h := range w.Hazards {
		if h.Lethal && avatar.Intersects(h.Bounds()) {
			return h, true
		}
	}
	return Hazard{}, false
}

// CollectEdibles removes every edible touching the avatar and scores it.
// Returns the collected edibles in field order.
func CollectEdibles(w *World) []Edible {
	avatar := w.Avatar.Bounds()
	points := w.Profile.Edible.Score

	var collected []Edible
	live := w.Edibles[:0]
	for _, e := range w.Edibles {
		if !e.Collected && avatar.Intersects(e.Bounds()) {
			e.Collected = true
			collected = append(collected, e)
			w.Score.Add(points)
			continue
		}
		live = append(live, e)
	}
	w.Edibles = live
	return collected
}

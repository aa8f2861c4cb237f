package sim

// ScoreTracker is the running score. It can only grow.
type ScoreTracker struct {
	total int
}

// Add adds n points. Non-positive amounts are ignored.
func (s *ScoreTracker) Add(n int) {
	if n > 0 {
		s.total += n
	}
}

// Current returns the score so far.
func (s ScoreTracker) Current() int {
	return s.total
}

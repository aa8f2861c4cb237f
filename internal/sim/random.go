package sim

import "math/rand"

// RandomSource is the single pseudorandom stream shared by every spawn in a
// world. It is seeded exactly once.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a stream seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max). An empty or inverted range yields min.
func (r *RandomSource) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}

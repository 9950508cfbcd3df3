package core

import "math/rand"

// Rand is the random source used by the simulation. Everything that rolls
// dice (the level generator, pickup tiers, particle bursts) draws from one
// of these, so a scripted implementation can make a whole run reproducible
// in tests.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// IntN returns a value in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64

	// Chance reports true with probability p.
	Chance(p float64) bool
}

// seededRand wraps math/rand with a fixed seed.
type seededRand struct {
	r *rand.Rand
}

// NewRand returns a deterministic Rand seeded with the given value.
func NewRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRand) Float64() float64 {
	return s.r.Float64()
}

func (s *seededRand) IntN(n int) int {
	return s.r.Intn(n)
}

func (s *seededRand) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

func (s *seededRand) Chance(p float64) bool {
	return s.r.Float64() < p
}

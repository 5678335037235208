// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand behind a narrow, seedable interface so spawn
// timing, targeting jitter and speed variance can be made deterministic in
// tests while staying time-seeded in the game.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed; seed 0 means
// "seed from the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was built with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float64 in [0, span).
func (s *PRNGService) Range(span float64) float64 {
	return s.rng.Float64() * span
}

// Jitter returns a random float64 in [-span, span).
func (s *PRNGService) Jitter(span float64) float64 {
	return (s.rng.Float64()*2 - 1) * span
}

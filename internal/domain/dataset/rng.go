package dataset

import (
	"math/rand"
	"time"
)

// NewSeededRNG creates a seeded random number generator.
// A zero seed derives one from the current time; the effective seed is
// returned so callers can log it for reproducibility.
func NewSeededRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// randomRange returns a uniform int in [min, max].
func randomRange(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// pick returns a uniform element of choices.
func pick[T any](rng *rand.Rand, choices []T) T {
	return choices[rng.Intn(len(choices))]
}

// chance returns true with probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

package nn

import "math/rand"

// NewRand returns a deterministic random source for weight initialization.
//
// Constructors take the generator explicitly, so two networks built from
// the same seed start with identical weights.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a value from the uniform distribution over [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

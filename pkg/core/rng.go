package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Bernoulli reports true with probability p. Values outside [0,1] are clamped.
func (r *RNG) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntRange returns a random int in [lo, hi], both bounds inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Int64 returns a non-negative pseudo-random 63-bit integer.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Position returns a uniformly distributed position inside rect.
func (r *RNG) Position(rect RectI) Vec2I {
	return Vec2I{
		X: rect.Min.X + r.IntN(rect.W()),
		Y: rect.Min.Y + r.IntN(rect.H()),
	}
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

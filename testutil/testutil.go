package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/guard"
	"github.com/hupe1980/guard/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand   *rand.Rand
	seed   int64
	stream guard.SeedStream
	mu     sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand:   rand.New(rand.NewSource(seed)), //nolint:gosec // reproducibility, not security
		seed:   seed,
		stream: guard.NewSeedStream(uint64(seed)), //nolint:gosec // the bit pattern is the seed
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) //nolint:gosec // reproducibility, not security
	r.stream = guard.NewSeedStream(uint64(r.seed)) //nolint:gosec // the bit pattern is the seed
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Fork returns a child RNG seeded from this RNG's seed stream.
// Children of the same parent are independent of each other and of the
// parent's own draws, and the n-th child is the same on every run.
func (r *RNG) Fork() *RNG {
	r.mu.Lock()
	defer r.mu.Unlock()
	return NewRNG(int64(r.stream.Next())) //nolint:gosec // the bit pattern is the seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(guard.PositiveOrDie(n))
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVector returns a vector with values in range [0, 1).
func (r *RNG) UniformVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, guard.PositiveOrDie(dimensions))
	for i := range vec {
		vec[i] = r.rand.Float64()
	}
	return vec
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	guard.PositiveOrDie(num)
	guard.PositiveOrDie(dimensions)

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GaussianVector returns a vector with values from a standard normal distribution.
func (r *RNG) GaussianVector(dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, guard.PositiveOrDie(dimensions))
	for i := range vec {
		vec[i] = r.rand.NormFloat64()
	}
	return vec
}

// UnitVector generates a single L2-normalized random vector.
func (r *RNG) UnitVector(dimensions int) []float64 {
	for {
		vec := r.GaussianVector(dimensions)
		if distance.NormalizeInPlace(vec) {
			return vec
		}
	}
}

// Perturb returns a copy of v with every coordinate shifted by a value in
// [-eps, eps). The L2 distance to v is therefore below eps*sqrt(len(v)).
func (r *RNG) Perturb(v []float64, eps float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x + (r.rand.Float64()*2-1)*eps
	}
	return out
}

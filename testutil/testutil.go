package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// UniformComponents generates num [x, y, z, w] tuples with values in [0, 1).
func (r *RNG) UniformComponents(num int) [][4]float32 {
	return r.components(num, 0, 1)
}

// UniformRangeComponents generates num [x, y, z, w] tuples with values in
// [-1, 2), so roughly two thirds of all values need clamping.
func (r *RNG) UniformRangeComponents(num int) [][4]float32 {
	return r.components(num, -1, 2)
}

func (r *RNG) components(num int, minVal, maxVal float32) [][4]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	out := make([][4]float32, num)
	for i := range out {
		for j := range out[i] {
			out[i][j] = minVal + r.rand.Float32()*span
		}
	}
	return out
}

// RawWords generates num arbitrary 32-bit patterns.
func (r *RNG) RawWords(num int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, num)
	for i := range out {
		out[i] = r.rand.Uint32()
	}
	return out
}

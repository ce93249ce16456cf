package utils

import "math/rand/v2"

// Source is a generator of uniform samples in [0, 1)
type Source interface {
	Float64() float64
}

// RNG is a caller-owned seeded generator that counts the samples it hands out.
type RNG struct {
	src   Source
	draws int
}

// NewRNG creates a deterministic PCG-backed RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewRNGFromSource(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// NewMT19937RNG creates an RNG backed by the classic Mersenne Twister sequence.
func NewMT19937RNG(seed uint32) *RNG {
	return NewRNGFromSource(NewMT19937(seed))
}

// NewRNGFromSource wraps an existing source.
func NewRNGFromSource(src Source) *RNG {
	return &RNG{src: src}
}

// Float64 returns the next uniform sample in [0, 1).
func (r *RNG) Float64() float64 {
	r.draws++
	return r.src.Float64()
}

// Draws reports how many samples have been consumed so far.
func (r *RNG) Draws() int { return r.draws }

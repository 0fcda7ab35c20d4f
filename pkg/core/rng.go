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

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Condition draws an initial condition of length n over k states. The leading
// symbol is never zero so the condition is not equivalent to a shorter one.
func (r *RNG) Condition(k uint8, n int) []uint8 {
	if n <= 0 || k < 2 {
		return nil
	}
	buf := make([]uint8, n)
	buf[0] = 1 + r.Uint8n(k-1)
	FillStates(r.r, buf[1:], k)
	return buf
}

// FillStates fills the buffer with values in [0, k) using the RNG.
func FillStates(r *rand.Rand, buf []uint8, k uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(int(k)))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

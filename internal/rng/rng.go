// Package rng defines the randomness source shared by every stochastic part
// of the simulation. Nothing reads global randomness: a Source is always
// passed in, so a fixed seed replays a session exactly.
package rng

import (
	"io"
	"math/rand"

	"github.com/google/uuid"
)

// Source is satisfied by *rand.Rand.
type Source interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
	Read(p []byte) (int, error)
}

// New returns a seeded Source.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Range returns a uniform int in [lo, hi]. A reversed range is swapped.
func Range(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Chance reports whether a roll succeeds with probability p (0..1).
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// NewID returns a UUID read from r, so ids drawn from a seeded Source replay.
// A nil or failing reader falls back to a random UUID.
func NewID(r io.Reader) string {
	if r != nil {
		if id, err := uuid.NewRandomFromReader(r); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

package farm

import (
	"math/rand"
	"time"
)

// Rand is the randomness capability injected into the engine. The standard
// *rand.Rand satisfies it; tests substitute a scripted source.
type Rand interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewSeededRand returns a deterministic Rand for the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewRand returns a time-seeded Rand.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

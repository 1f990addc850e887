package engine

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded random source for deterministic sessions.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SystemRand returns a random source seeded from the wall clock.
func SystemRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

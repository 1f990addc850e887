package testutil

import "math/rand"

// SeededRand returns a deterministic random source for tests.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

package engine

import (
	"math"
	"math/rand"
)

// Balance assigns true to round(total*ratio) slots and shuffles the result.
// The count is deterministic for a given total and ratio; only the order is
// random. Ratios outside [0, 1] are clamped and a non-positive total yields
// an empty sequence.
func Balance(total int, ratio float64, rng *rand.Rand) []bool {
	if total <= 0 {
		return []bool{}
	}
	targets := RoundHalfUp(float64(total) * clampFloat(ratio, 0, 1))
	if targets < 0 {
		targets = 0
	}
	if targets > total {
		targets = total
	}

	labels := make([]bool, total)
	for i := 0; i < targets; i++ {
		labels[i] = true
	}
	Shuffle(labels, rng)
	return labels
}

// Shuffle permutes labels in place using Fisher-Yates.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// RoundHalfUp rounds to the nearest integer with ties rounded up.
// Every ratio computation in the engines shares this policy.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

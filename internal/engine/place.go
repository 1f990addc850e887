package engine

import (
	"math"
	"math/rand"
)

// Point is a normalized 2-D position in the unit square.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// placeAttempts bounds the rejection loop per point. On exhaustion the
// candidate is accepted even if it violates the spacing constraint, so
// placement always terminates with n points.
const placeAttempts = 64

// PlacePoints samples n points in the unit square, rejecting candidates
// closer than minDist to an already placed point. Used to lay out boards,
// scene elements, and palace anchors without visual overlap.
func PlacePoints(n int, minDist float64, rng *rand.Rand) []Point {
	if n <= 0 {
		return []Point{}
	}
	points := make([]Point, 0, n)
	for len(points) < n {
		var candidate Point
		for attempt := 0; attempt < placeAttempts; attempt++ {
			candidate = Point{X: rng.Float64(), Y: rng.Float64()}
			if minPairDist(points, candidate) >= minDist {
				break
			}
		}
		points = append(points, candidate)
	}
	return points
}

func minPairDist(points []Point, candidate Point) float64 {
	min := math.Inf(1)
	for _, p := range points {
		if d := p.Dist(candidate); d < min {
			min = d
		}
	}
	return min
}

// NoRepeatSequence draws length values from [0, symbols) with no two
// consecutive values equal. A single symbol cannot satisfy the constraint,
// so symbols is clamped to at least 2 for length > 1.
func NoRepeatSequence(length, symbols int, rng *rand.Rand) []int {
	if length <= 0 {
		return []int{}
	}
	if symbols < 1 {
		symbols = 1
	}
	if length > 1 && symbols < 2 {
		symbols = 2
	}
	seq := make([]int, length)
	seq[0] = rng.Intn(symbols)
	for i := 1; i < length; i++ {
		// Drawing from symbols-1 values and skipping the previous one
		// keeps the remaining choices uniform.
		v := rng.Intn(symbols - 1)
		if v >= seq[i-1] {
			v++
		}
		seq[i] = v
	}
	return seq
}

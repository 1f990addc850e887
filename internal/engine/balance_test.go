package engine

import (
	"math"
	"testing"

	"mentis/internal/testutil"
)

// TestBalanceCounts verifies the target count matches round(total*ratio)
// across a grid of totals and ratios.
func TestBalanceCounts(t *testing.T) {
	rng := testutil.SeededRand(1)
	for total := 0; total <= 40; total++ {
		for _, ratio := range []float64{0, 0.2, 0.25, 0.3, 0.5, 0.75, 1} {
			labels := Balance(total, ratio, rng)
			if len(labels) != total {
				t.Fatalf("total=%d ratio=%.2f: got %d labels", total, ratio, len(labels))
			}
			want := int(math.Floor(float64(total)*ratio + 0.5))
			if got := countTrue(labels); got != want {
				t.Fatalf("total=%d ratio=%.2f: got %d targets, want %d", total, ratio, got, want)
			}
		}
	}
}

// TestBalanceClampsRatio verifies out-of-range ratios clamp to [0, 1].
func TestBalanceClampsRatio(t *testing.T) {
	rng := testutil.SeededRand(2)
	if got := countTrue(Balance(10, -0.5, rng)); got != 0 {
		t.Fatalf("negative ratio: got %d targets, want 0", got)
	}
	if got := countTrue(Balance(10, 1.8, rng)); got != 10 {
		t.Fatalf("ratio above one: got %d targets, want 10", got)
	}
}

// TestBalanceEmpty verifies a non-positive total yields an empty sequence.
func TestBalanceEmpty(t *testing.T) {
	rng := testutil.SeededRand(3)
	if got := Balance(0, 0.5, rng); len(got) != 0 {
		t.Fatalf("total=0: got %d labels", len(got))
	}
	if got := Balance(-4, 0.5, rng); len(got) != 0 {
		t.Fatalf("total=-4: got %d labels", len(got))
	}
}

// TestBalanceShuffles verifies the order varies while the count holds.
func TestBalanceShuffles(t *testing.T) {
	rng := testutil.SeededRand(4)
	first := Balance(50, 0.5, rng)
	varied := false
	for i := 0; i < 20 && !varied; i++ {
		next := Balance(50, 0.5, rng)
		for j := range next {
			if next[j] != first[j] {
				varied = true
				break
			}
		}
	}
	if !varied {
		t.Fatalf("expected shuffled orders to differ across draws")
	}
}

// TestRoundHalfUp verifies the shared tie-break policy rounds half up.
func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0}, {0.4, 0}, {0.5, 1}, {1.5, 2}, {2.5, 3}, {2.49, 2},
	}
	for _, tc := range cases {
		if got := RoundHalfUp(tc.in); got != tc.want {
			t.Fatalf("RoundHalfUp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func countTrue(labels []bool) int {
	n := 0
	for _, l := range labels {
		if l {
			n++
		}
	}
	return n
}

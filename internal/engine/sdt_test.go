package engine

import (
	"math"
	"testing"
)

// TestZScoreKnownValues checks the approximation against reference
// quantiles of the standard normal distribution.
func TestZScoreKnownValues(t *testing.T) {
	cases := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.8413, 1.0},
		{0.9772, 2.0},
		{0.1587, -1.0},
		{0.025, -1.96},
		{0.975, 1.96},
	}
	for _, tc := range cases {
		got := ZScore(tc.p)
		if math.Abs(got-tc.want) > 0.01 {
			t.Fatalf("ZScore(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

// TestZScoreOddSymmetry verifies Z(p) == -Z(1-p) across the open interval.
func TestZScoreOddSymmetry(t *testing.T) {
	for _, p := range []float64{0.01, 0.02425, 0.1, 0.25, 0.4, 0.49, 0.5, 0.7, 0.9, 0.99} {
		left := ZScore(p)
		right := -ZScore(1 - p)
		if math.Abs(left-right) > 1e-9 {
			t.Fatalf("symmetry broken at p=%v: %v vs %v", p, left, right)
		}
	}
}

// TestZScoreSaturates verifies the saturating bounds outside (0, 1).
func TestZScoreSaturates(t *testing.T) {
	if got := ZScore(0); got != -zSaturation {
		t.Fatalf("ZScore(0) = %v, want %v", got, -zSaturation)
	}
	if got := ZScore(1); got != zSaturation {
		t.Fatalf("ZScore(1) = %v, want %v", got, zSaturation)
	}
	if got := ZScore(-2); got != -zSaturation {
		t.Fatalf("ZScore(-2) = %v, want %v", got, -zSaturation)
	}
}

// TestZScoreContinuity checks the piecewise regions join without a jump.
func TestZScoreContinuity(t *testing.T) {
	eps := 1e-9
	for _, boundary := range []float64{acklamLow, acklamHigh} {
		below := ZScore(boundary - eps)
		above := ZScore(boundary + eps)
		if math.Abs(below-above) > 1e-6 {
			t.Fatalf("discontinuity at %v: %v vs %v", boundary, below, above)
		}
	}
}

// TestDPrime verifies the sign and magnitude expectations for the
// sensitivity index.
func TestDPrime(t *testing.T) {
	if got := DPrime(0.5, 0.5); math.Abs(got) > 1e-9 {
		t.Fatalf("DPrime(0.5, 0.5) = %v, want 0", got)
	}
	high := DPrime(0.99, 0.01)
	if high < 4 {
		t.Fatalf("DPrime(0.99, 0.01) = %v, want large positive", high)
	}
	low := DPrime(0.01, 0.99)
	if low > -4 {
		t.Fatalf("DPrime(0.01, 0.99) = %v, want large negative", low)
	}
	if math.Abs(high+low) > 1e-9 {
		t.Fatalf("expected symmetric extremes, got %v and %v", high, low)
	}
}

// TestDPrimeClampsRates verifies perfect rates clamp instead of diverging.
func TestDPrimeClampsRates(t *testing.T) {
	if got, want := DPrime(1, 0), DPrime(0.99, 0.01); got != want {
		t.Fatalf("DPrime(1, 0) = %v, want clamped %v", got, want)
	}
}

package engine

import "testing"

// TestAdjustThresholds verifies the adaptation rule at its boundaries.
func TestAdjustThresholds(t *testing.T) {
	cases := []struct {
		level    int
		accuracy float64
		want     int
	}{
		{5, 0.81, 6},
		{5, 0.8, 5},
		{5, 0.5, 5},
		{5, 0.49, 4},
		{MaxLevel, 0.95, MaxLevel},
		{MinLevel, 0.1, MinLevel},
	}
	for _, tc := range cases {
		if got := Adjust(tc.level, tc.accuracy); got != tc.want {
			t.Fatalf("Adjust(%d, %v) = %d, want %d", tc.level, tc.accuracy, got, tc.want)
		}
	}
}

// TestClampLevel verifies out-of-range scalars clamp to the bounds.
func TestClampLevel(t *testing.T) {
	if got := ClampLevel(0); got != MinLevel {
		t.Fatalf("ClampLevel(0) = %d", got)
	}
	if got := ClampLevel(99); got != MaxLevel {
		t.Fatalf("ClampLevel(99) = %d", got)
	}
}

// TestScaleIntMonotone verifies interpolation is monotone in the level
// for both growing and shrinking parameter ranges.
func TestScaleIntMonotone(t *testing.T) {
	for level := MinLevel; level < MaxLevel; level++ {
		if ScaleInt(level+1, 10, 40) < ScaleInt(level, 10, 40) {
			t.Fatalf("growing range not monotone at level %d", level)
		}
		if ScaleInt(level+1, 3000, 800) > ScaleInt(level, 3000, 800) {
			t.Fatalf("shrinking range not monotone at level %d", level)
		}
	}
	if got := ScaleInt(MinLevel, 10, 40); got != 10 {
		t.Fatalf("ScaleInt at min level = %d, want 10", got)
	}
	if got := ScaleInt(MaxLevel, 10, 40); got != 40 {
		t.Fatalf("ScaleInt at max level = %d, want 40", got)
	}
}

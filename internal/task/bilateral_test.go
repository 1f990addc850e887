package task

import (
	"fmt"
	"testing"

	"mentis/internal/testutil"
)

// TestMirrorCell verifies reflection across the vertical axis: same row,
// mirrored column, with center cells mapping to themselves.
func TestMirrorCell(t *testing.T) {
	cases := []struct{ cell, want int }{
		{0, 2}, {1, 1}, {2, 0},
		{3, 5}, {4, 4}, {5, 3},
		{6, 8}, {7, 7}, {8, 6},
	}
	for _, c := range cases {
		if got := MirrorCell(c.cell); got != c.want {
			t.Fatalf("MirrorCell(%d) = %d, want %d", c.cell, got, c.want)
		}
	}
}

// TestBilateralPerfectRun verifies touching each lit cell with its mirror
// scores every trial correct.
func TestBilateralPerfectRun(t *testing.T) {
	s := NewBilateral(BilateralConfigForLevel(2), nil, testutil.SeededRand(31)).(*bilateralSession)
	trials := s.eng.Trials()
	s.Start()
	for _, trial := range trials {
		input := fmt.Sprintf("%d %d", trial.Stimulus.Left, trial.Stimulus.Mirror)
		fb, ok := s.Respond(input)
		if !ok || !fb.Correct {
			t.Fatalf("trial %d: %q judged ok=%v correct=%v", trial.Index, input, ok, fb.Correct)
		}
		s.Advance()
	}
	result := s.Result()
	if result.Accuracy != 1.0 {
		t.Fatalf("accuracy = %v", result.Accuracy)
	}
}

// TestBilateralWrongMirrorIsIncorrect verifies naming the lit cell with a
// non-mirrored partner fails the trial.
func TestBilateralWrongMirrorIsIncorrect(t *testing.T) {
	s := NewBilateral(BilateralConfigForLevel(2), nil, testutil.SeededRand(32)).(*bilateralSession)
	trial := s.eng.CurrentTrial()
	s.Start()
	wrong := (trial.Stimulus.Mirror + 1) % (bilateralGridSize * bilateralGridSize)
	fb, ok := s.Respond(fmt.Sprintf("%d %d", trial.Stimulus.Left, wrong))
	if !ok {
		t.Fatalf("response rejected")
	}
	if fb.Correct {
		t.Fatalf("mismatched mirror judged correct")
	}
}

// TestBilateralInputParsing verifies malformed pairs are refused without
// consuming the trial.
func TestBilateralInputParsing(t *testing.T) {
	s := NewBilateral(BilateralConfigForLevel(1), nil, testutil.SeededRand(33))
	s.Start()
	for _, input := range []string{"", "3", "a b", "1 2 3"} {
		if _, ok := s.Respond(input); ok {
			t.Fatalf("input %q accepted", input)
		}
	}
}

// TestBilateralNoConsecutiveRepeats verifies the lit cell changes between
// consecutive trials.
func TestBilateralNoConsecutiveRepeats(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s := NewBilateral(BilateralConfigForLevel(10), nil, testutil.SeededRand(seed)).(*bilateralSession)
		trials := s.eng.Trials()
		for i := 1; i < len(trials); i++ {
			if trials[i].Stimulus.Left == trials[i-1].Stimulus.Left {
				t.Fatalf("seed %d: trials %d and %d repeat cell %d", seed, i-1, i, trials[i].Stimulus.Left)
			}
		}
	}
}

package task

import (
	"strconv"
	"testing"

	"mentis/internal/testutil"
)

// TestPalacePlacementsAreDistinct verifies every placement uses a unique
// item and a unique anchor.
func TestPalacePlacementsAreDistinct(t *testing.T) {
	s := NewPalace(PalaceConfigForLevel(10), nil, testutil.SeededRand(51)).(*palaceSession)
	items := make(map[string]bool)
	anchors := make(map[int]bool)
	for _, trial := range s.eng.Trials() {
		p := trial.Stimulus
		if items[p.Item] {
			t.Fatalf("item %q placed twice", p.Item)
		}
		if anchors[p.Anchor] {
			t.Fatalf("anchor %d used twice", p.Anchor)
		}
		if p.Anchor < 0 || p.Anchor >= s.cfg.Anchors {
			t.Fatalf("anchor %d outside 0..%d", p.Anchor, s.cfg.Anchors-1)
		}
		items[p.Item] = true
		anchors[p.Anchor] = true
	}
}

// TestPalacePerfectRecall verifies recalling every placement scores
// accuracy 1.0 with the placement bonus applied.
func TestPalacePerfectRecall(t *testing.T) {
	s := NewPalace(PalaceConfigForLevel(4), nil, testutil.SeededRand(52)).(*palaceSession)
	trials := s.eng.Trials()
	s.Start()
	s.FinishStudy()
	for _, trial := range trials {
		fb, ok := s.Respond(strconv.Itoa(trial.Stimulus.Anchor))
		if !ok || !fb.Correct {
			t.Fatalf("trial %d: ok=%v correct=%v", trial.Index, ok, fb.Correct)
		}
		s.Advance()
	}
	result := s.Result()
	if result.Accuracy != 1.0 {
		t.Fatalf("accuracy = %v", result.Accuracy)
	}
	if result.Breakdown.Bonus != placementBonus*float64(len(trials)) {
		t.Fatalf("bonus = %v, want %v", result.Breakdown.Bonus, placementBonus*float64(len(trials)))
	}
}

// TestPalaceAnswersByAnchorName verifies anchors resolve by name as well
// as by number.
func TestPalaceAnswersByAnchorName(t *testing.T) {
	s := NewPalace(PalaceConfigForLevel(4), nil, testutil.SeededRand(53)).(*palaceSession)
	trial := s.eng.CurrentTrial()
	s.Start()
	s.FinishStudy()
	fb, ok := s.Respond(palaceAnchors[trial.Stimulus.Anchor])
	if !ok {
		t.Fatalf("anchor name rejected")
	}
	if !fb.Correct {
		t.Fatalf("named anchor judged incorrect")
	}
	if _, ok := s.Respond("attic"); ok {
		t.Fatalf("unknown anchor accepted")
	}
}

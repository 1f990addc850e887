package task

import (
	"strconv"
	"testing"

	"mentis/internal/engine"
	"mentis/internal/testutil"
)

// TestSoundPairChoicesHoldAnswer verifies each probe's choice set
// contains the true partner at the recorded answer index, with the
// configured fan-out and no duplicates.
func TestSoundPairChoicesHoldAnswer(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := SoundPairConfigForLevel(10)
		s := NewSoundPair(cfg, nil, testutil.SeededRand(seed)).(*soundPairSession)
		for _, trial := range s.eng.Trials() {
			st := trial.Stimulus
			if len(st.Choices) != cfg.Choices {
				t.Fatalf("seed %d trial %d: %d choices, want %d", seed, trial.Index, len(st.Choices), cfg.Choices)
			}
			if st.Answer < 0 || st.Answer >= len(st.Choices) {
				t.Fatalf("seed %d trial %d: answer index %d out of range", seed, trial.Index, st.Answer)
			}
			seen := make(map[string]bool, len(st.Choices))
			for _, choice := range st.Choices {
				if seen[choice] {
					t.Fatalf("seed %d trial %d: duplicate choice %q", seed, trial.Index, choice)
				}
				if choice == st.Cue {
					t.Fatalf("seed %d trial %d: cue %q offered as its own partner", seed, trial.Index, st.Cue)
				}
				seen[choice] = true
			}
		}
	}
}

// TestSoundPairPerfectRun verifies picking every true partner scores
// accuracy 1.0 with the pair bonus.
func TestSoundPairPerfectRun(t *testing.T) {
	s := NewSoundPair(SoundPairConfigForLevel(5), nil, testutil.SeededRand(61)).(*soundPairSession)
	trials := s.eng.Trials()
	s.Start()
	if s.eng.Phase() != engine.PhaseStudy {
		t.Fatalf("phase after start = %v, want study", s.eng.Phase())
	}
	s.FinishStudy()
	for _, trial := range trials {
		input := strconv.Itoa(trial.Stimulus.Answer + 1)
		fb, ok := s.Respond(input)
		if !ok || !fb.Correct {
			t.Fatalf("trial %d: ok=%v correct=%v", trial.Index, ok, fb.Correct)
		}
		s.Advance()
	}
	result := s.Result()
	if result.Accuracy != 1.0 {
		t.Fatalf("accuracy = %v", result.Accuracy)
	}
	if result.Breakdown.Bonus != soundPairBonus*float64(len(trials)) {
		t.Fatalf("bonus = %v", result.Breakdown.Bonus)
	}
}

// TestSoundPairRejectsOutOfRangeChoice verifies choice numbers outside
// the presented set are refused.
func TestSoundPairRejectsOutOfRangeChoice(t *testing.T) {
	s := NewSoundPair(SoundPairConfigForLevel(1), nil, testutil.SeededRand(62)).(*soundPairSession)
	s.Start()
	s.FinishStudy()
	if _, ok := s.Respond("0"); ok {
		t.Fatalf("choice 0 accepted")
	}
	if _, ok := s.Respond("9"); ok {
		t.Fatalf("choice past the fan-out accepted")
	}
	if _, ok := s.Respond("1"); !ok {
		t.Fatalf("valid choice refused")
	}
}

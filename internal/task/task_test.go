package task

import (
	"testing"

	"mentis/internal/testutil"
)

// TestAllRegistered verifies every task registers itself and the listing
// is sorted by name.
func TestAllRegistered(t *testing.T) {
	want := []string{
		"bilateral", "corsi", "gonogo", "gridsearch", "nback",
		"palace", "rules", "scene", "sequence", "soundpair", "stroop",
	}
	defs := All()
	if len(defs) != len(want) {
		t.Fatalf("All() returned %d tasks, want %d", len(defs), len(want))
	}
	for i, def := range defs {
		if def.Name != want[i] {
			t.Fatalf("All()[%d].Name = %q, want %q", i, def.Name, want[i])
		}
	}
}

// TestLookup verifies name resolution for known and unknown tasks.
func TestLookup(t *testing.T) {
	def, ok := Lookup("stroop")
	if !ok {
		t.Fatalf("Lookup(stroop) not found")
	}
	if def.Title != "Color Interference" {
		t.Fatalf("Lookup(stroop).Title = %q", def.Title)
	}
	if _, ok := Lookup("sudoku"); ok {
		t.Fatalf("Lookup(sudoku) unexpectedly found")
	}
}

// TestDefinitionsConstructAtEveryLevel verifies every registered
// constructor accepts the full difficulty range, including out-of-range
// values, without failing.
func TestDefinitionsConstructAtEveryLevel(t *testing.T) {
	for _, def := range All() {
		for _, level := range []int{-1, 1, 5, 10, 99} {
			s := def.New(level, nil, testutil.SeededRand(7))
			if s == nil {
				t.Fatalf("%s: New(level=%d) returned nil", def.Name, level)
			}
			if s.Name() != def.Name {
				t.Fatalf("%s: session Name() = %q", def.Name, s.Name())
			}
			if got := s.Level(); got < 1 || got > 10 {
				t.Fatalf("%s: New(level=%d) kept level %d outside 1..10", def.Name, level, got)
			}
		}
	}
}

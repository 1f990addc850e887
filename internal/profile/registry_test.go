package profile

import (
	"path/filepath"
	"testing"
	"time"

	"mentis/internal/engine"
)

func result(task string, level int, accuracy, score float64) engine.Result {
	return engine.Result{Task: task, Level: level, Accuracy: accuracy, Score: score}
}

// TestRecordRaisesLevelOnHighAccuracy verifies accuracy above the raise
// threshold bumps the level.
func TestRecordRaisesLevelOnHighAccuracy(t *testing.T) {
	r := New()
	now := time.Now()
	state := r.Record(result("stroop", 4, 0.9, 100), now)
	if state.Level != 5 {
		t.Fatalf("level = %d, want 5", state.Level)
	}
	if state.Sessions != 1 || state.LastAccuracy != 0.9 {
		t.Fatalf("state = %+v", state)
	}
}

// TestRecordLowersLevelOnLowAccuracy verifies accuracy below the lower
// threshold drops the level, never below the floor.
func TestRecordLowersLevelOnLowAccuracy(t *testing.T) {
	r := New()
	now := time.Now()
	if state := r.Record(result("nback", 3, 0.4, 20), now); state.Level != 2 {
		t.Fatalf("level = %d, want 2", state.Level)
	}
	r.Put(TaskState{Task: "corsi", Level: 1})
	if state := r.Record(result("corsi", 1, 0.1, 5), now); state.Level != 1 {
		t.Fatalf("level = %d, want floor 1", state.Level)
	}
}

// TestRecordUsesStoredLevel verifies subsequent sessions adjust from the
// registry's level, not the result's.
func TestRecordUsesStoredLevel(t *testing.T) {
	r := New()
	now := time.Now()
	r.Record(result("stroop", 4, 0.9, 100), now)
	state := r.Record(result("stroop", 1, 0.9, 110), now)
	if state.Level != 6 {
		t.Fatalf("level = %d, want 6", state.Level)
	}
	if state.Sessions != 2 {
		t.Fatalf("sessions = %d", state.Sessions)
	}
	if state.BestScore != 110 {
		t.Fatalf("best = %v", state.BestScore)
	}
}

// TestRecordMiddleAccuracyHoldsLevel verifies accuracy between the
// thresholds leaves the level alone.
func TestRecordMiddleAccuracyHoldsLevel(t *testing.T) {
	r := New()
	if state := r.Record(result("scene", 5, 0.7, 60), time.Now()); state.Level != 5 {
		t.Fatalf("level = %d, want 5", state.Level)
	}
}

// TestLevelFallback verifies unknown tasks report the clamped fallback.
func TestLevelFallback(t *testing.T) {
	r := New()
	if got := r.Level("palace", 3); got != 3 {
		t.Fatalf("fallback = %d", got)
	}
	if got := r.Level("palace", 99); got != 10 {
		t.Fatalf("fallback clamp = %d", got)
	}
	r.Put(TaskState{Task: "palace", Level: 7})
	if got := r.Level("palace", 3); got != 7 {
		t.Fatalf("stored level = %d", got)
	}
}

// TestSaveLoadRoundTrip verifies persistence across registry instances.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	r := New()
	r.Record(result("stroop", 4, 0.9, 100), time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	r.Record(result("nback", 2, 0.3, 15), time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC))
	if err := r.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := New()
	if err := fresh.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	states := fresh.List()
	if len(states) != 2 {
		t.Fatalf("states = %+v", states)
	}
	if states[0].Task != "nback" || states[0].Level != 1 {
		t.Fatalf("nback state = %+v", states[0])
	}
	if states[1].Task != "stroop" || states[1].Level != 5 {
		t.Fatalf("stroop state = %+v", states[1])
	}
}

// TestLoadMissingFile verifies a missing profile file is not an error.
func TestLoadMissingFile(t *testing.T) {
	r := New()
	if err := r.Load(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(r.List()) != 0 {
		t.Fatalf("states = %+v", r.List())
	}
}

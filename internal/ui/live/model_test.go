package live

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mentis/internal/engine"
	"mentis/internal/task"
	"mentis/internal/testutil"
)

func pressKey(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T", next)
	}
	return model
}

func typeAnswer(t *testing.T, m Model, answer string) Model {
	t.Helper()
	for _, r := range answer {
		m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// TestModelPlaysSessionToCompletion verifies a full keyboard-driven run
// reaches the result screen.
func TestModelPlaysSessionToCompletion(t *testing.T) {
	def, ok := task.Lookup("gridsearch")
	if !ok {
		t.Fatalf("gridsearch not registered")
	}
	session := def.New(1, engine.SystemClock{}, testutil.SeededRand(11))
	m := NewModel(session, Options{NoColor: true})
	total := m.state.Total
	if total == 0 {
		t.Fatalf("no trials generated")
	}
	for i := 0; i < total; i++ {
		m = typeAnswer(t, m, "1")
	}
	if !m.finished {
		t.Fatalf("model not finished after %d answers", total)
	}
	if m.Aborted() {
		t.Fatalf("finished run reported as aborted")
	}
	result := m.Result()
	if result.TrialCount != total {
		t.Fatalf("result trials = %d, want %d", result.TrialCount, total)
	}
	if view := m.View(); view == "" {
		t.Fatalf("empty final view")
	}
}

// TestModelRejectsGarbageInput verifies a failed parse keeps the trial
// open and surfaces a message.
func TestModelRejectsGarbageInput(t *testing.T) {
	def, _ := task.Lookup("gridsearch")
	session := def.New(1, engine.SystemClock{}, testutil.SeededRand(3))
	m := NewModel(session, Options{NoColor: true})
	m = typeAnswer(t, m, "zebra")
	if m.state.Current != 0 {
		t.Fatalf("trial advanced on invalid input")
	}
	if m.state.LastFeedback == "" {
		t.Fatalf("no feedback for invalid input")
	}
}

// TestModelEscapeAborts verifies escape quits without a result.
func TestModelEscapeAborts(t *testing.T) {
	def, _ := task.Lookup("gridsearch")
	session := def.New(1, engine.SystemClock{}, testutil.SeededRand(3))
	m := NewModel(session, Options{NoColor: true})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := next.(Model)
	if !model.Aborted() {
		t.Fatalf("escape did not abort")
	}
	if cmd == nil {
		t.Fatalf("escape did not quit")
	}
}

// TestModelStudyPhaseGatesOnEnter verifies study tasks hold input until
// the memorization period ends.
func TestModelStudyPhaseGatesOnEnter(t *testing.T) {
	def, ok := task.Lookup("scene")
	if !ok {
		t.Fatalf("scene not registered")
	}
	session := def.New(1, engine.SystemClock{}, testutil.SeededRand(5))
	m := NewModel(session, Options{NoColor: true})
	if m.state.Phase != engine.PhaseStudy {
		t.Fatalf("phase = %s, want study", m.state.Phase)
	}
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.Phase != engine.PhaseTest {
		t.Fatalf("phase = %s, want test", m.state.Phase)
	}
}

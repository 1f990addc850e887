package task

import (
	"math/rand"
	"sort"

	"mentis/internal/engine"
)

// Option is a keyed choice presented to the user for the current trial.
type Option struct {
	Key   string
	Label string
}

// Prompt is the render-ready view of the current trial. The engine stays
// presentation-free; tasks translate their stimuli into prompts here.
type Prompt struct {
	Phase     engine.Phase
	Index     int
	Total     int
	Text      string
	Detail    string
	Options   []Option
	TimeoutMs int
}

// Feedback reports how a response was classified.
type Feedback struct {
	Outcome engine.Outcome
	Correct bool
}

// Session is the uniform handle the presentation layer drives. Each task
// wraps its typed engine and parses raw key input into typed actions.
type Session interface {
	Name() string
	Title() string
	Level() int
	Start()
	// FinishStudy ends the memorization period for study tasks; a no-op
	// for tasks without one.
	FinishStudy()
	// Prompt returns the current trial's view, or false once complete.
	Prompt() (Prompt, bool)
	// Respond parses raw input and records a response. The boolean is
	// false when the input did not parse or the session refused it.
	Respond(input string) (Feedback, bool)
	Advance() bool
	IsComplete() bool
	Progress() engine.Progress
	Result() engine.Result
	Reset()
}

// Definition describes a registered task.
type Definition struct {
	Name    string
	Title   string
	Summary string
	New     func(level int, clock engine.Clock, rng *rand.Rand) Session
}

var registry = map[string]Definition{}

func register(def Definition) {
	registry[def.Name] = def
}

// All returns the registered tasks sorted by name.
func All() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Lookup returns the task definition for a name.
func Lookup(name string) (Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

// base carries the session plumbing every task shares.
type base[S, A any] struct {
	name  string
	title string
	eng   *engine.Engine[S, A]
}

func (b *base[S, A]) Name() string  { return b.name }
func (b *base[S, A]) Title() string { return b.title }

func (b *base[S, A]) Level() int { return b.eng.Config().Level }

func (b *base[S, A]) Start() { b.eng.Start() }

func (b *base[S, A]) FinishStudy() { b.eng.FinishStudy() }

func (b *base[S, A]) Advance() bool { return b.eng.Advance() }

func (b *base[S, A]) IsComplete() bool { return b.eng.IsComplete() }

func (b *base[S, A]) Progress() engine.Progress { return b.eng.Progress() }

func (b *base[S, A]) Result() engine.Result { return b.eng.Result() }

func (b *base[S, A]) Reset() { b.eng.Reset() }

// respond runs a parsed action through the engine and shapes the feedback.
func (b *base[S, A]) respond(action A, ok bool) (Feedback, bool) {
	if !ok {
		return Feedback{}, false
	}
	resp := b.eng.Respond(action)
	if resp == nil {
		return Feedback{}, false
	}
	return Feedback{Outcome: resp.Outcome, Correct: resp.Correct}, true
}

// promptHeader fills the fields shared by every prompt.
func (b *base[S, A]) promptHeader() (Prompt, *engine.Trial[S], bool) {
	trial := b.eng.CurrentTrial()
	if trial == nil {
		return Prompt{}, nil, false
	}
	progress := b.eng.Progress()
	return Prompt{
		Phase:     b.eng.Phase(),
		Index:     trial.Index,
		Total:     progress.Total,
		TimeoutMs: b.eng.Config().TrialTimeoutMs,
	}, trial, true
}

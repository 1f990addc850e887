package engine

import (
	"math/rand"
	"time"
)

// Generator produces one stimulus per balanced label. The returned label
// slice replaces the balanced assignment when non-nil, for tasks whose
// target labels depend on the realized stream (N-back recomputes targets
// from the generated symbols rather than trusting the assignment).
// Implementations must be pure given the config, labels, and random
// source.
type Generator[S any] func(cfg Config, labels []bool, rng *rand.Rand) ([]S, []bool)

// Classifier judges a user action against the current trial. It receives
// responded=false when the caller advances past an unanswered trial and
// must still return a classified outcome (miss or correct rejection for
// signal-detection tasks, incorrect for forced-choice tasks that required
// an answer).
type Classifier[S, A any] func(trial Trial[S], action A, responded bool) Outcome

// Scorer folds the final session state into a result record.
type Scorer[S any] func(cfg Config, trials []Trial[S], responses []Response, durationSeconds float64) Result

// Strategies is the triple a task supplies to specialize the engine.
type Strategies[S, A any] struct {
	Generate Generator[S]
	Classify Classifier[S, A]
	Score    Scorer[S]
	// Study inserts a study phase between ready and test. Responses are
	// rejected until the caller signals the end of the study period.
	Study bool
}

// Engine is the session state machine shared by every task: it owns the
// trial list, the cursor, the phase, and the append-only response log.
// An engine is exclusively owned by its caller and is not safe for
// concurrent use; invalid operations return sentinels rather than
// corrupting state.
type Engine[S, A any] struct {
	cfg         Config
	strategies  Strategies[S, A]
	clock       Clock
	rng         *rand.Rand
	trials      []Trial[S]
	responses   []Response
	cursor      int
	phase       Phase
	startedAt   time.Time
	completedAt time.Time
	trialShown  time.Time
}

// New builds an engine and eagerly generates its trial set. Construction
// never fails: out-of-range config values are clamped first.
func New[S, A any](cfg Config, strategies Strategies[S, A], clock Clock, rng *rand.Rand) *Engine[S, A] {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = SystemRand()
	}
	e := &Engine[S, A]{
		cfg:        clampConfig(cfg),
		strategies: strategies,
		clock:      clock,
		rng:        rng,
	}
	e.generate()
	return e
}

func clampConfig(cfg Config) Config {
	cfg.Trials = clampInt(cfg.Trials, 1, 500)
	cfg.TargetRatio = clampFloat(cfg.TargetRatio, 0, 1)
	cfg.Level = ClampLevel(cfg.Level)
	if cfg.TrialTimeoutMs < 0 {
		cfg.TrialTimeoutMs = 0
	}
	return cfg
}

func (e *Engine[S, A]) generate() {
	labels := Balance(e.cfg.Trials, e.cfg.TargetRatio, e.rng)
	stimuli, relabeled := e.strategies.Generate(e.cfg, labels, e.rng)
	if relabeled != nil {
		labels = relabeled
	}
	trials := make([]Trial[S], len(stimuli))
	for i, s := range stimuli {
		label := false
		if i < len(labels) {
			label = labels[i]
		}
		trials[i] = Trial[S]{Index: i, Stimulus: s, IsTarget: label}
	}
	e.trials = trials
	e.responses = nil
	e.cursor = 0
	e.phase = PhaseReady
	e.startedAt = time.Time{}
	e.completedAt = time.Time{}
	e.trialShown = time.Time{}
}

// Start transitions ready to running (or study). A no-op once the session
// has left the ready phase.
func (e *Engine[S, A]) Start() {
	if e.phase != PhaseReady {
		return
	}
	e.startedAt = e.clock.Now()
	e.trialShown = e.startedAt
	if e.strategies.Study {
		e.phase = PhaseStudy
	} else {
		e.phase = PhaseRunning
	}
}

// FinishStudy transitions study to test. A no-op in any other phase.
func (e *Engine[S, A]) FinishStudy() {
	if e.phase != PhaseStudy {
		return
	}
	e.phase = PhaseTest
	e.trialShown = e.clock.Now()
}

// CurrentTrial returns a copy of the active trial, or nil once the
// session is complete.
func (e *Engine[S, A]) CurrentTrial() *Trial[S] {
	if e.cursor >= len(e.trials) || e.phase == PhaseComplete {
		return nil
	}
	trial := e.trials[e.cursor]
	return &trial
}

// Respond classifies an action against the current trial and appends the
// response to the log. It returns nil when the session is not accepting
// responses or the current trial already has one.
func (e *Engine[S, A]) Respond(action A) *Response {
	if !e.accepting() {
		return nil
	}
	if e.cursor >= len(e.trials) || e.hasResponse(e.cursor) {
		return nil
	}
	trial := e.trials[e.cursor]
	outcome := e.strategies.Classify(trial, action, true)
	reaction := float64(e.clock.Now().Sub(e.trialShown)) / float64(time.Millisecond)
	if reaction < 0 {
		reaction = 0
	}
	response := Response{
		Index:      trial.Index,
		Responded:  true,
		Outcome:    outcome,
		Correct:    outcome.IsCorrect(),
		ReactionMs: &reaction,
	}
	e.responses = append(e.responses, response)
	return &response
}

// Advance moves the cursor to the next trial and reports whether the
// session continues. If the current trial has no recorded response, a
// no-response entry is synthesized first. Advancing past the last trial
// completes the session; advancing a complete session returns false.
func (e *Engine[S, A]) Advance() bool {
	if !e.accepting() {
		return false
	}
	if e.cursor >= len(e.trials) {
		return false
	}
	if !e.hasResponse(e.cursor) {
		trial := e.trials[e.cursor]
		var zero A
		outcome := e.strategies.Classify(trial, zero, false)
		e.responses = append(e.responses, Response{
			Index:   trial.Index,
			Outcome: outcome,
			Correct: outcome.IsCorrect(),
		})
	}
	e.cursor++
	e.trialShown = e.clock.Now()
	if e.cursor >= len(e.trials) {
		e.phase = PhaseComplete
		e.completedAt = e.clock.Now()
		return false
	}
	return true
}

// IsComplete reports whether the session reached its terminal phase.
func (e *Engine[S, A]) IsComplete() bool {
	return e.phase == PhaseComplete
}

// Progress reports the cursor position and trial count.
func (e *Engine[S, A]) Progress() Progress {
	current := e.cursor
	if current > len(e.trials) {
		current = len(e.trials)
	}
	return Progress{Current: current, Total: len(e.trials)}
}

// Phase returns the current session phase.
func (e *Engine[S, A]) Phase() Phase {
	return e.phase
}

// Config returns a copy of the clamped configuration.
func (e *Engine[S, A]) Config() Config {
	return e.cfg
}

// Trials returns a defensive copy of the generated trial list.
func (e *Engine[S, A]) Trials() []Trial[S] {
	out := make([]Trial[S], len(e.trials))
	copy(out, e.trials)
	return out
}

// State returns a defensive copy of the mutable session state.
func (e *Engine[S, A]) State() Snapshot {
	responses := make([]Response, len(e.responses))
	copy(responses, e.responses)
	return Snapshot{
		Phase:     e.phase,
		Cursor:    e.cursor,
		Responses: responses,
		StartedAt: e.startedAt,
	}
}

// Result folds the response log into the session's result record. It is a
// pure function of the current state and is meaningful once the session
// is complete.
func (e *Engine[S, A]) Result() Result {
	duration := 0.0
	if !e.startedAt.IsZero() {
		end := e.completedAt
		if end.IsZero() {
			end = e.clock.Now()
		}
		duration = end.Sub(e.startedAt).Seconds()
	}
	responses := make([]Response, len(e.responses))
	copy(responses, e.responses)
	return e.strategies.Score(e.cfg, e.Trials(), responses, duration)
}

// Reset regenerates the trial set and restores the ready phase using the
// same configuration.
func (e *Engine[S, A]) Reset() {
	e.generate()
}

func (e *Engine[S, A]) accepting() bool {
	switch e.phase {
	case PhaseRunning, PhaseTest:
		return true
	default:
		return false
	}
}

func (e *Engine[S, A]) hasResponse(index int) bool {
	for _, r := range e.responses {
		if r.Index == index {
			return true
		}
	}
	return false
}

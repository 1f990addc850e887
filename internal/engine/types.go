package engine

import "time"

// Phase identifies where a session is in its lifecycle. Transitions are
// one-directional and terminal at PhaseComplete. Tasks with a memorization
// period insert PhaseStudy and PhaseTest between ready and complete.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhaseRunning  Phase = "running"
	PhaseStudy    Phase = "study"
	PhaseTest     Phase = "test"
	PhaseComplete Phase = "complete"
)

// Trial is a generated stimulus plus the label marking the correct answer.
// Trials are generated once per session and never mutated.
type Trial[S any] struct {
	Index    int
	Stimulus S
	IsTarget bool
}

// Response records the classified outcome of one trial. ReactionMs is nil
// when no response occurred before the caller advanced.
type Response struct {
	Index      int
	Responded  bool
	Outcome    Outcome
	Correct    bool
	ReactionMs *float64
}

// Progress reports the cursor position within the trial list.
type Progress struct {
	Current int
	Total   int
}

// Config holds the engine-level parameters shared by every task. Values
// outside valid ranges are clamped at construction, never rejected.
type Config struct {
	Trials      int
	TargetRatio float64
	Level       int
	// TrialTimeoutMs is the per-trial response window. The engine does not
	// enforce it; the presentation layer schedules the timeout and calls
	// Advance when it fires.
	TrialTimeoutMs int
}

// Snapshot is a read-only copy of the mutable session state.
type Snapshot struct {
	Phase     Phase
	Cursor    int
	Responses []Response
	StartedAt time.Time
}

// Result is the record produced for a completed session. Optional
// psychometric fields are nil for tasks that do not compute them. All
// rate-like fields are rounded to two decimals for display stability.
type Result struct {
	Task            string   `json:"task"`
	Level           int      `json:"level"`
	Score           float64  `json:"score"`
	Accuracy        float64  `json:"accuracy"`
	DurationSeconds float64  `json:"duration_seconds"`
	TrialCount      int      `json:"trial_count"`
	CorrectCount    int      `json:"correct_count"`
	ErrorCount      int      `json:"error_count"`
	AvgReactionMs   float64  `json:"avg_reaction_ms"`
	ReactionSDMs    float64  `json:"reaction_sd_ms"`
	HitRate         *float64 `json:"hit_rate,omitempty"`
	FalseAlarmRate  *float64 `json:"false_alarm_rate,omitempty"`
	DPrime          *float64 `json:"d_prime,omitempty"`
	CongruentAcc    *float64 `json:"congruent_accuracy,omitempty"`
	IncongruentAcc  *float64 `json:"incongruent_accuracy,omitempty"`
	RulesDiscovered *int     `json:"rules_discovered,omitempty"`
	SpanReached     *int     `json:"span_reached,omitempty"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
}

// ScoreBreakdown separates the score into its additive components.
type ScoreBreakdown struct {
	Base  float64 `json:"base"`
	Speed float64 `json:"speed"`
	Bonus float64 `json:"bonus"`
}

// Float returns a pointer to v, for the optional Result fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for the optional Result fields.
func Int(v int) *int { return &v }

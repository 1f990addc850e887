package live

import (
	"time"

	"mentis/internal/engine"
)

// TrialRow holds UI state for a single answered trial.
type TrialRow struct {
	Index      int
	Input      string
	Responded  bool
	Outcome    engine.Outcome
	Correct    bool
	ReactionMs *float64
}

// Counts aggregates outcomes over the answered trials.
type Counts struct {
	Answered int
	Correct  int
	Wrong    int
	Missed   int
}

// State captures the live UI state for a running session.
type State struct {
	Task         string
	Title        string
	Level        int
	Phase        engine.Phase
	Current      int
	Total        int
	Rows         []TrialRow
	Counts       Counts
	LastFeedback string
	StartedAt    time.Time
}

package live

import "mentis/internal/engine"

// TrialEvent records the resolution of one trial for the UI. A trial
// resolves either through a parsed response or through the timeout
// advancing past it, in which case Responded is false and the engine's
// classification is not visible to the presentation layer.
type TrialEvent struct {
	Index      int
	Input      string
	Responded  bool
	Outcome    engine.Outcome
	Correct    bool
	ReactionMs *float64
}

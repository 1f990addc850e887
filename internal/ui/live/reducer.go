package live

import (
	"fmt"

	"mentis/internal/engine"
	"mentis/internal/task"
)

// NewState seeds UI state from a session before the first trial.
func NewState(session task.Session) State {
	progress := session.Progress()
	return State{
		Task:    session.Name(),
		Title:   session.Title(),
		Level:   session.Level(),
		Phase:   engine.PhaseReady,
		Current: progress.Current,
		Total:   progress.Total,
	}
}

// Reduce applies a resolved trial to the UI state.
func Reduce(state State, event TrialEvent) State {
	state.Rows = append(state.Rows, TrialRow{
		Index:      event.Index,
		Input:      event.Input,
		Responded:  event.Responded,
		Outcome:    event.Outcome,
		Correct:    event.Correct,
		ReactionMs: event.ReactionMs,
	})
	state.Counts = recount(state.Rows)
	state.LastFeedback = formatFeedback(event)
	return state
}

// recount recomputes outcome counts for the current rows.
func recount(rows []TrialRow) Counts {
	var counts Counts
	for _, row := range rows {
		counts.Answered++
		switch {
		case !row.Responded:
			counts.Missed++
		case row.Correct:
			counts.Correct++
		default:
			counts.Wrong++
		}
	}
	return counts
}

// formatFeedback creates a short footer message for the event.
func formatFeedback(event TrialEvent) string {
	if !event.Responded {
		return fmt.Sprintf("Trial %d: no response", event.Index+1)
	}
	label := "incorrect"
	if event.Correct {
		label = "correct"
	}
	if event.ReactionMs != nil {
		return fmt.Sprintf("Trial %d: %s (%.0f ms)", event.Index+1, label, *event.ReactionMs)
	}
	return fmt.Sprintf("Trial %d: %s", event.Index+1, label)
}

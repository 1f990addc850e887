package live

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"mentis/internal/engine"
	"mentis/internal/task"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatOptions renders the keyed choices of a prompt on one line.
func formatOptions(options []task.Option) string {
	parts := make([]string, 0, len(options))
	for _, option := range options {
		parts = append(parts, "["+option.Key+"] "+option.Label)
	}
	return strings.Join(parts, "  ")
}

// formatCountdown renders the remaining response window in seconds.
func formatCountdown(remaining time.Duration) string {
	if remaining <= 0 {
		return "0.0s"
	}
	return fmt.Sprintf("%.1fs", remaining.Seconds())
}

// formatReaction renders a reaction time cell.
func formatReaction(reactionMs *float64) string {
	if reactionMs == nil {
		return ""
	}
	return fmt.Sprintf("%.0f ms", *reactionMs)
}

// formatOutcome renders an outcome cell with status coloring.
func formatOutcome(row TrialRow, noColor bool) string {
	text := outcomeLabel(row)
	if noColor {
		return text
	}
	return outcomeStyle(row).Render(text)
}

// outcomeLabel maps outcomes to display labels.
func outcomeLabel(row TrialRow) string {
	if !row.Responded {
		return "no response"
	}
	switch row.Outcome {
	case engine.OutcomeHit:
		return "hit"
	case engine.OutcomeMiss:
		return "miss"
	case engine.OutcomeFalseAlarm:
		return "false alarm"
	case engine.OutcomeCorrectRejection:
		return "correct rejection"
	case engine.OutcomeCorrect:
		return "correct"
	case engine.OutcomeIncorrect:
		return "incorrect"
	default:
		return string(row.Outcome)
	}
}

// outcomeStyle selects a style for an answered trial.
func outcomeStyle(row TrialRow) lipgloss.Style {
	color := lipgloss.Color("246")
	switch {
	case !row.Responded:
		color = lipgloss.Color("240")
	case row.Correct:
		color = lipgloss.Color("42")
	default:
		color = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Foreground(color)
}

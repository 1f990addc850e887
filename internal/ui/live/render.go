package live

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"mentis/internal/engine"
	"mentis/internal/task"
)

// renderHeader renders the session header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := state.Title + " | Level " + fmtInt(state.Level)
	if state.Total > 0 {
		line += " | Trial " + fmtInt(state.Current+1) + "/" + fmtInt(state.Total)
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the outcome counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Answered: " + fmtInt(counts.Answered) +
		" Correct: " + fmtInt(counts.Correct) +
		" Wrong: " + fmtInt(counts.Wrong) +
		" Missed: " + fmtInt(counts.Missed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderPrompt renders the stimulus block for the current trial.
func renderPrompt(prompt task.Prompt, hasPrompt bool, noColor bool) string {
	if !hasPrompt {
		return ""
	}
	lines := []string{stylize(prompt.Text, noColor, lipgloss.Color("252"))}
	if prompt.Detail != "" {
		lines = append(lines, stylize(prompt.Detail, noColor, lipgloss.Color("246")))
	}
	if len(prompt.Options) > 0 {
		lines = append(lines, stylize(formatOptions(prompt.Options), noColor, lipgloss.Color("244")))
	}
	if prompt.Phase == engine.PhaseStudy {
		lines = append(lines, stylize("press enter when memorized", noColor, lipgloss.Color("39")))
	}
	return strings.Join(lines, "\n")
}

// renderInput renders the answer line with the remaining response window.
func renderInput(prompt task.Prompt, input string, remaining time.Duration, noColor bool) string {
	if prompt.Phase == engine.PhaseStudy {
		return ""
	}
	line := "> " + input
	if remaining > 0 {
		line += "  (" + formatCountdown(remaining) + ")"
	}
	return stylize(line, noColor, lipgloss.Color("252"))
}

// renderResult renders the completion summary.
func renderResult(result engine.Result, noColor bool) string {
	line := fmt.Sprintf("Session complete | Score: %.2f | Accuracy: %.0f%% | %d/%d correct",
		result.Score, result.Accuracy*100, result.CorrectCount, result.TrialCount)
	if result.AvgReactionMs > 0 {
		line += fmt.Sprintf(" | Avg reaction: %.0f ms", result.AvgReactionMs)
	}
	return stylize(line, noColor, lipgloss.Color("42"))
}

// renderFooter renders the last feedback line.
func renderFooter(state State, noColor bool) string {
	if state.LastFeedback == "" {
		return renderHint("type your answer, enter to submit, esc to quit", noColor)
	}
	return stylize(state.LastFeedback, noColor, lipgloss.Color("244"))
}

// renderHint renders a muted help line.
func renderHint(text string, noColor bool) string {
	return stylize(text, noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

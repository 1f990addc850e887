package report

import "fmt"

// formatPercent renders a 0..1 rate as a percentage string.
func formatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// formatScore renders a score with two decimals, trimming trailing noise.
func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns defines the answered-trial table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Trial", Width: 6},
		{Title: "Answer", Width: 16},
		{Title: "Outcome", Width: 18},
		{Title: "Reaction", Width: 10},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts answered trials into table rows, newest first.
func rowsForState(state State, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for i := len(state.Rows) - 1; i >= 0; i-- {
		row := state.Rows[i]
		rows = append(rows, table.Row{
			fmtInt(row.Index + 1),
			row.Input,
			formatOutcome(row, noColor),
			formatReaction(row.ReactionMs),
		})
	}
	return rows
}

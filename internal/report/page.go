package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"mentis/internal/store"
)

// ReportPage renders the full training report document.
func ReportPage(player string, progress []store.TaskProgress, sessions []store.SessionRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Mentis Report</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #1a1a2e; }
table { border-collapse: collapse; margin-bottom: 2rem; }
th, td { border: 1px solid #ccc; padding: 0.35rem 0.75rem; text-align: right; }
th { background: #f0f0f5; }
td:first-child, th:first-child { text-align: left; }
</style>
</head>
<body>
<h1>Mentis Training Report</h1>
`); err != nil {
			return err
		}
		if player != "" {
			if _, err := fmt.Fprintf(w, "<p>Player: %s</p>\n", templ.EscapeString(player)); err != nil {
				return err
			}
		}
		if err := progressTable(progress).Render(ctx, w); err != nil {
			return err
		}
		if err := sessionsTable(sessions).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

func progressTable(progress []store.TaskProgress) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(progress) == 0 {
			_, err := io.WriteString(w, "<p>No sessions recorded yet.</p>\n")
			return err
		}
		if _, err := io.WriteString(w, `<h2>Progress</h2>
<table>
<tr><th>Task</th><th>Level</th><th>Sessions</th><th>Best</th><th>Avg score</th><th>Avg accuracy</th></tr>
`); err != nil {
			return err
		}
		for _, p := range progress {
			if _, err := fmt.Fprintf(w,
				"<tr><td>%s</td><td>%d</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				templ.EscapeString(p.Task), p.Level, p.Sessions,
				formatScore(p.BestScore), formatScore(p.AvgScore), formatPercent(p.AvgAccuracy)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}

func sessionsTable(sessions []store.SessionRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(sessions) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<h2>Recent sessions</h2>
<table>
<tr><th>Played</th><th>Task</th><th>Level</th><th>Score</th><th>Accuracy</th><th>Avg RT (ms)</th></tr>
`); err != nil {
			return err
		}
		for _, s := range sessions {
			if _, err := fmt.Fprintf(w,
				"<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				s.PlayedAt.Format("2006-01-02 15:04"),
				templ.EscapeString(s.Result.Task), s.Result.Level,
				formatScore(s.Result.Score), formatPercent(s.Result.Accuracy),
				formatScore(s.Result.AvgReactionMs)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}

package config

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"mentis/internal/task"
)

// ScaffoldConfig renders the default config document. Tasks are listed
// explicitly so a fresh config documents every available engine.
func ScaffoldConfig(player string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `version: 1

profile:
  player: %q
  data_dir: %q

session:
  # 0 draws a fresh seed per session; any other value makes stimuli
  # reproducible.
  seed: 0
  ui: "auto"

report:
  output_dir: %q
  serve_addr: %q

tasks:
`, player, DefaultDataDir, DefaultReportDir, DefaultServeAddr); err != nil {
			return err
		}
		for _, def := range task.All() {
			if _, err := fmt.Fprintf(w, "  # %s\n  - id: %s\n    level: %d\n", def.Summary, def.Name, defaultLevel); err != nil {
				return err
			}
		}
		return nil
	})
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mentis/internal/report"
	"mentis/internal/store"
)

// reportSessionLimit caps the rows embedded in the generated report.
const reportSessionLimit = 100

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .mentis/config.yml)")
		outDir := flags.String("out", "", "Output directory (default: from config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		env, err := loadEnvironment(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot load config: %v\n", err)
			return ExitError
		}
		outputDir := env.outputDir
		if *outDir != "" {
			outputDir = *outDir
		}

		db, err := store.Open(env.dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot open results database: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ctx := context.Background()
		progress, err := store.LoadProgress(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot read progress: %v\n", err)
			return ExitError
		}
		sessions, err := store.ListSessions(ctx, db, "", reportSessionLimit)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot read sessions: %v\n", err)
			return ExitError
		}

		html, err := report.BuildHTML(env.cfg.Profile.Player, progress, sessions)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot render report: %v\n", err)
			return ExitError
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			fmt.Fprintf(stderr, "Cannot create output directory: %v\n", err)
			return ExitError
		}
		outPath := filepath.Join(outputDir, "report.html")
		if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Cannot write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", outPath)
		return ExitOK
	}
}

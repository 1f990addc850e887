package cli

import (
	"flag"
	"fmt"
	"io"

	"mentis/internal/profile"
	"mentis/internal/task"
)

// runTasks builds the handler for the tasks command.
func runTasks(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .mentis/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		// Levels come from the profile when one exists; the listing still
		// works outside an initialized directory.
		registry := profile.New()
		if env, err := loadEnvironment(*specPath); err == nil {
			_ = registry.Load(env.profilePath)
		}

		for _, def := range task.All() {
			level := registry.Level(def.Name, 1)
			fmt.Fprintf(stdout, "%-12s level %-2d  %s: %s\n", def.Name, level, def.Title, def.Summary)
		}
		return ExitOK
	}
}

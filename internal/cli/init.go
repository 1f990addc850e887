package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mentis/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		player := flags.String("player", "", "Player name recorded with results")
		dir := flags.String("dir", "", "Directory to initialize (default: current directory)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintln(stderr, "Unexpected arguments")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		root := *dir
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Cannot determine working directory: %v\n", err)
				return ExitError
			}
			root = cwd
		}

		configPath := config.ConfigPath(root)
		if err := config.Scaffold(configPath, *player); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Created %s\n", configPath)
		return ExitOK
	}
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"mentis/internal/reportserver"
	"mentis/internal/store"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .mentis/config.yml)")
		addr := flags.String("addr", "", "Address to listen on (default: from config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintln(stderr, "Unexpected arguments")
			return ExitUsage
		}

		env, err := loadEnvironment(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot load config: %v\n", err)
			return ExitError
		}
		listenAddr := env.cfg.Report.ServeAddr
		if *addr != "" {
			listenAddr = *addr
		}

		db, err := store.Open(env.dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot open results database: %v\n", err)
			return ExitError
		}
		defer db.Close()

		cfg := reportserver.Config{
			Addr:   listenAddr,
			DBPath: env.dbPath,
			Player: env.cfg.Profile.Player,
			DB:     db,
		}
		fmt.Fprintf(stdout, "Serving report at http://%s\n", cfg.Addr)
		if err := serveReport(context.Background(), cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"mentis/internal/engine"
	"mentis/internal/profile"
	"mentis/internal/store"
	"mentis/internal/task"
	"mentis/internal/ui/live"
)

// Test seams for the interactive pieces of play. A nil stdinSource
// falls back to os.Stdin at call time so it can be redirected late.
var stdinSource io.Reader
var runLiveSession func(task.Session, io.Writer, live.Options) (engine.Result, error) = live.Run

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .mentis/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto, live, or plain (default: from config)")
		seed := flags.Int64("seed", 0, "Seed for reproducible sessions (default: from config)")
		player := flags.String("player", "", "Player name (default: from config)")
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

		plans, err := selectTaskPlans(env, flags.Args())
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		mode := *uiMode
		if mode == "" {
			mode = env.cfg.Session.UI
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		playerName := *player
		if playerName == "" {
			playerName = env.cfg.Profile.Player
		}
		runSeed := *seed
		if runSeed == 0 {
			runSeed = env.cfg.Session.Seed
		}
		if runSeed == 0 {
			runSeed = time.Now().UnixNano()
		}

		return playSessions(env, plans, playerName, runSeed, decision.useLive, stdout, stderr)
	}
}

// playSessions runs each planned session, records the results, and
// persists the adaptive profile.
func playSessions(env *environment, plans []plannedSession, player string, seed int64, useLive bool, stdout, stderr io.Writer) int {
	ctx := context.Background()

	registry := profile.New()
	if err := registry.Load(env.profilePath); err != nil {
		fmt.Fprintf(stderr, "Cannot read profile: %v\n", err)
		return ExitError
	}

	db, err := store.Open(env.dbPath)
	if err != nil {
		fmt.Fprintf(stderr, "Results database unavailable, caching locally: %v\n", err)
		db = nil
	} else {
		defer db.Close()
	}
	cache := store.NewCache(env.cachePath)
	if db != nil {
		if replayed, err := cache.Replay(ctx, db); err != nil {
			fmt.Fprintf(stderr, "Cannot flush cached results: %v\n", err)
		} else if replayed > 0 {
			fmt.Fprintf(stdout, "Flushed %d cached result(s)\n", replayed)
		}
	}

	input := stdinSource
	if input == nil {
		input = os.Stdin
	}
	scanner := bufio.NewScanner(input)
	exit := ExitOK
	for i, plan := range plans {
		level := registry.Level(plan.def.Name, plan.level)
		sessionSeed := seed + int64(i)
		session := plan.def.New(level, engine.SystemClock{}, newSeededRand(sessionSeed))

		var result engine.Result
		var runErr error
		if useLive {
			result, runErr = runLiveSession(session, stdout, live.Options{})
		} else {
			result, runErr = runPlainSession(session, scanner, stdout)
		}
		if errors.Is(runErr, live.ErrAborted) {
			fmt.Fprintln(stdout, "Session aborted")
			break
		}
		if runErr != nil {
			fmt.Fprintf(stderr, "Session failed: %v\n", runErr)
			exit = ExitError
			break
		}

		state := registry.Record(result, time.Now())
		fmt.Fprintf(stdout, "Next %s level: %d\n", plan.def.Name, state.Level)

		record := store.SessionRecord{
			Player:   player,
			Seed:     sessionSeed,
			PlayedAt: time.Now().UTC(),
			Result:   result,
		}
		stored, err := store.Save(ctx, db, cache, record)
		if err != nil {
			fmt.Fprintf(stderr, "Cannot record result: %v\n", err)
			exit = ExitError
		} else if !stored {
			fmt.Fprintln(stdout, "Result cached; it will be flushed on the next run")
		}
	}

	if err := registry.Save(env.profilePath); err != nil {
		fmt.Fprintf(stderr, "Cannot save profile: %v\n", err)
		return ExitError
	}
	return exit
}

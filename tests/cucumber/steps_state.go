//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir      string
	configPath   string
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	exitCode     int
	previousIn   *os.File
	stdinClose   func()
	initialized  bool
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a directory with a valid training configuration$`, state.aValidConfiguration)
	ctx.Step(`^the training configuration is invalid$`, state.anInvalidConfiguration)
	ctx.Step(`^every trial is answered with "([^"]*)"$`, state.everyTrialIsAnsweredWith)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^a results database exists$`, state.aResultsDatabaseExists)
}

// reset clears buffers and state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.configPath = ""
	s.initialized = false
	s.previousIn = nil
	s.stdinClose = nil
}

// cleanup restores stdin and removes temporary files.
func (s *featureState) cleanup() {
	if s.stdinClose != nil {
		s.stdinClose()
	}
	if s.previousIn != nil {
		os.Stdin = s.previousIn
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

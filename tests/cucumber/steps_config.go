//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const validConfig = `version: 1
profile:
  player: tester
tasks:
  - id: gridsearch
    level: 1
`

const invalidConfig = `version: 9
profile:
  player: tester
`

// aValidConfiguration scaffolds a working directory with a loadable
// training configuration.
func (s *featureState) aValidConfiguration() error {
	return s.writeConfig(validConfig)
}

// anInvalidConfiguration scaffolds a configuration that must fail
// validation.
func (s *featureState) anInvalidConfiguration() error {
	return s.writeConfig(invalidConfig)
}

// everyTrialIsAnsweredWith feeds a repeated answer line into stdin for
// the next plain-mode session.
func (s *featureState) everyTrialIsAnsweredWith(answer string) error {
	reader, writer, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	// A level-1 board has nine trials; extra lines are harmless.
	go func() {
		defer writer.Close()
		_, _ = writer.WriteString(strings.Repeat(answer+"\n", 64))
	}()
	s.previousIn = os.Stdin
	os.Stdin = reader
	s.stdinClose = func() { _ = reader.Close() }
	return nil
}

// writeConfig lays out <tmp>/.mentis/config.yml with the given body.
func (s *featureState) writeConfig(content string) error {
	dir, err := os.MkdirTemp("", "mentis-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	configDir := filepath.Join(dir, ".mentis")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	s.configPath = filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(s.configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	s.initialized = true
	return nil
}

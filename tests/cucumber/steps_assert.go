//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// theExitCodeIsZero asserts the last command succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("exit code %d, stderr:\n%s", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts the last command failed.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected failure, stdout:\n%s", s.stdout.String())
	}
	return nil
}

// theOutputContains asserts on captured stdout.
func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("stdout missing %q:\n%s", text, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts on captured stderr.
func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("stderr missing %q:\n%s", text, s.stderr.String())
	}
	return nil
}

// aResultsDatabaseExists asserts a played session created the database.
func (s *featureState) aResultsDatabaseExists() error {
	if s.workDir == "" {
		return fmt.Errorf("no working directory prepared")
	}
	dbPath := filepath.Join(s.workDir, ".mentis", "data", "mentis.duckdb")
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("results database missing: %w", err)
	}
	return nil
}

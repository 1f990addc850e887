package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSpec drops a minimal config file into a fresh directory and
// returns its path.
func writeSpec(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".mentis")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalSpec = `version: 1
profile:
  player: tester
tasks:
  - id: gridsearch
    level: 1
`

// TestInitScaffoldsConfig verifies init writes a loadable config and
// refuses to overwrite it.
func TestInitScaffoldsConfig(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", "--dir", dir, "--player", "alex"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("init failed (%d): %s", code, stderr.String())
	}
	configPath := filepath.Join(dir, ".mentis", "config.yml")
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"validate", "--spec", configPath}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("scaffolded config invalid (%d): %s", code, stderr.String())
	}

	if code := Run([]string{"init", "--dir", dir}, &stdout, &stderr); code != ExitError {
		t.Fatalf("second init should fail, got %d", code)
	}
}

// TestValidateReportsBadConfig verifies validation failures reach stderr.
func TestValidateReportsBadConfig(t *testing.T) {
	path := writeSpec(t, "version: 9\n")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--spec", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "Validation failed") {
		t.Fatalf("stderr = %s", stderr.String())
	}
}

// TestTasksListsEveryTask verifies the listing names all engines.
func TestTasksListsEveryTask(t *testing.T) {
	path := writeSpec(t, minimalSpec)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"tasks", "--spec", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("tasks failed (%d): %s", code, stderr.String())
	}
	for _, name := range []string{"gridsearch", "stroop", "nback", "corsi", "gonogo", "bilateral", "rules", "scene", "palace", "soundpair", "sequence"} {
		if !strings.Contains(stdout.String(), name) {
			t.Fatalf("listing missing %q:\n%s", name, stdout.String())
		}
	}
}

// TestPlayPlainSessionRecordsResult verifies an end-to-end plain-mode
// run: the session completes, the profile updates, and the result lands
// in the database.
func TestPlayPlainSessionRecordsResult(t *testing.T) {
	path := writeSpec(t, minimalSpec)

	// A level-1 board is 3x3, so nine answers finish the session.
	prevStdin := stdinSource
	stdinSource = strings.NewReader(strings.Repeat("1\n", 9))
	t.Cleanup(func() { stdinSource = prevStdin })

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--spec", path, "--ui", "plain", "--seed", "42", "gridsearch"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("play failed (%d): %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Score") || !strings.Contains(out, "Next gridsearch level") {
		t.Fatalf("output missing summary:\n%s", out)
	}

	root := filepath.Dir(filepath.Dir(path))
	if _, err := os.Stat(filepath.Join(root, ".mentis", "data", "profile.json")); err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".mentis", "data", "mentis.duckdb")); err != nil {
		t.Fatalf("database not created: %v", err)
	}
}

// TestPlayUnknownTaskFails verifies an unconfigured task id is rejected.
func TestPlayUnknownTaskFails(t *testing.T) {
	path := writeSpec(t, minimalSpec)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"play", "--spec", path, "--ui", "plain", "sudoku"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
}

// TestReportWritesHTML verifies report generation after a played session.
func TestReportWritesHTML(t *testing.T) {
	path := writeSpec(t, minimalSpec)

	prevStdin := stdinSource
	stdinSource = strings.NewReader(strings.Repeat("1\n", 9))
	t.Cleanup(func() { stdinSource = prevStdin })
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"play", "--spec", path, "--ui", "plain", "--seed", "7", "gridsearch"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("play failed (%d): %s", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"report", "--spec", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("report failed (%d): %s", code, stderr.String())
	}
	root := filepath.Dir(filepath.Dir(path))
	reportPath := filepath.Join(root, ".mentis", "reports", "report.html")
	content, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(content), "gridsearch") {
		t.Fatalf("report missing played task:\n%s", content)
	}
}

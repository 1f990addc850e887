package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mentis/internal/spec"
)

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadValidConfig verifies a minimal config loads with defaults
// filled in.
func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "version: 1\ntasks:\n  - id: stroop\n    level: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Profile.DataDir != DefaultDataDir {
		t.Fatalf("data dir = %q", cfg.Profile.DataDir)
	}
	if cfg.Session.UI != "auto" {
		t.Fatalf("ui = %q", cfg.Session.UI)
	}
	if cfg.Report.ServeAddr != DefaultServeAddr {
		t.Fatalf("serve addr = %q", cfg.Report.ServeAddr)
	}
}

// TestLoadRejectsUnknownTask verifies validation catches task ids that no
// engine provides.
func TestLoadRejectsUnknownTask(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "version: 1\ntasks:\n  - id: chess\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown task") {
		t.Fatalf("err = %v", err)
	}
}

// TestLoadRejectsBadVersion verifies unsupported versions fail.
func TestLoadRejectsBadVersion(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "version: 2\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported version") {
		t.Fatalf("err = %v", err)
	}
}

// TestNormalizeFillsAllTasks verifies an empty tasks section expands to
// every registered task at the default level.
func TestNormalizeFillsAllTasks(t *testing.T) {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	if len(cfg.Tasks) == 0 {
		t.Fatalf("no tasks after normalize")
	}
	for _, tc := range cfg.Tasks {
		if tc.Level != defaultLevel {
			t.Fatalf("task %s level = %d", tc.ID, tc.Level)
		}
	}
}

// TestNormalizeClampsLevels verifies out-of-range levels are pulled into
// 1..10 rather than rejected later.
func TestNormalizeClampsLevels(t *testing.T) {
	cfg := spec.Config{
		Version: 1,
		Tasks: []spec.TaskConfig{
			{ID: "stroop", Level: 40},
			{ID: "nback", Level: -3},
		},
	}
	Normalize(&cfg)
	if cfg.Tasks[0].Level != 10 || cfg.Tasks[1].Level != 1 {
		t.Fatalf("levels = %d, %d", cfg.Tasks[0].Level, cfg.Tasks[1].Level)
	}
}

// TestValidateDuplicateTask verifies duplicate ids are reported once.
func TestValidateDuplicateTask(t *testing.T) {
	cfg := spec.Config{
		Version: 1,
		Profile: spec.ProfileConfig{DataDir: DefaultDataDir},
		Session: spec.SessionConfig{UI: "auto"},
		Report:  spec.ReportConfig{OutputDir: DefaultReportDir},
		Tasks: []spec.TaskConfig{
			{ID: "stroop", Level: 1},
			{ID: "stroop", Level: 2},
		},
	}
	err := Validate(&cfg)
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("err = %v", err)
	}
}

// TestValidateBadUIMode verifies unsupported ui modes are rejected.
func TestValidateBadUIMode(t *testing.T) {
	cfg := spec.Config{
		Version: 1,
		Profile: spec.ProfileConfig{DataDir: DefaultDataDir},
		Session: spec.SessionConfig{UI: "curses"},
		Report:  spec.ReportConfig{OutputDir: DefaultReportDir},
	}
	err := Validate(&cfg)
	if err == nil || !strings.Contains(err.Error(), "session.ui") {
		t.Fatalf("err = %v", err)
	}
}

// TestFindConfigPathWalksUp verifies the upward search finds a config in
// an ancestor directory.
func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("FindConfigPath: %v", err)
	}
	wantSuffix := filepath.Join(ConfigDirName, ConfigFileName)
	if !strings.HasSuffix(found, wantSuffix) {
		t.Fatalf("found %q, want suffix %q", found, wantSuffix)
	}
	if _, err := os.Stat(found); err != nil {
		t.Fatalf("stat found config: %v", err)
	}
}

// TestFindConfigPathMissing verifies the search fails cleanly when no
// config exists.
func TestFindConfigPathMissing(t *testing.T) {
	if _, err := FindConfigPath(t.TempDir()); err == nil {
		t.Fatalf("expected an error")
	}
}

// TestRootFromConfigPath verifies root derivation from a config path.
func TestRootFromConfigPath(t *testing.T) {
	got := RootFromConfigPath(filepath.Join("proj", ConfigDirName, ConfigFileName))
	if got != "proj" {
		t.Fatalf("root = %q", got)
	}
}

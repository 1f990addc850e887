package spec

import (
	"strings"
	"testing"
)

// TestParseConfig verifies a complete config document round-trips into
// the typed structure.
func TestParseConfig(t *testing.T) {
	data := []byte(`version: 1
profile:
  player: "alex"
  data_dir: ".mentis/data"
session:
  seed: 42
  ui: "plain"
tasks:
  - id: stroop
    level: 3
  - id: nback
    level: 5
report:
  output_dir: ".mentis/reports"
  serve_addr: "127.0.0.1:8787"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("version = %d", cfg.Version)
	}
	if cfg.Profile.Player != "alex" {
		t.Fatalf("player = %q", cfg.Profile.Player)
	}
	if cfg.Session.Seed != 42 || cfg.Session.UI != "plain" {
		t.Fatalf("session = %+v", cfg.Session)
	}
	if len(cfg.Tasks) != 2 || cfg.Tasks[1].ID != "nback" || cfg.Tasks[1].Level != 5 {
		t.Fatalf("tasks = %+v", cfg.Tasks)
	}
	if cfg.Report.ServeAddr != "127.0.0.1:8787" {
		t.Fatalf("report = %+v", cfg.Report)
	}
}

// TestParseConfigRejectsUnknownFields verifies typos fail loudly instead
// of being silently dropped.
func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\nprofiles: {}\n"))
	if err == nil {
		t.Fatalf("unknown field accepted")
	}
}

// TestParseConfigRejectsMultipleDocuments verifies only a single YAML
// document is allowed.
func TestParseConfigRejectsMultipleDocuments(t *testing.T) {
	_, err := ParseConfig([]byte("version: 1\n---\nversion: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("multiple documents: err = %v", err)
	}
}

// TestParseConfigRejectsMalformedYAML verifies syntax errors surface.
func TestParseConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("version: [1\n")); err == nil {
		t.Fatalf("malformed YAML accepted")
	}
}

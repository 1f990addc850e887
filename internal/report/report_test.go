package report

import (
	"strings"
	"testing"
	"time"

	"mentis/internal/engine"
	"mentis/internal/store"
)

// TestBuildHTML verifies the report holds the progress and session rows.
func TestBuildHTML(t *testing.T) {
	progress := []store.TaskProgress{
		{Task: "stroop", Level: 3, Sessions: 4, BestScore: 212.5, AvgScore: 180, AvgAccuracy: 0.85},
	}
	sessions := []store.SessionRow{
		{
			PlayedAt: time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
			Result:   engine.Result{Task: "stroop", Level: 3, Score: 212.5, Accuracy: 0.9, AvgReactionMs: 640},
		},
	}
	html, err := BuildHTML("alex", progress, sessions)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	for _, want := range []string{"alex", "stroop", "212.50", "85.0%", "2026-08-30 10:30", "640.00"} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q:\n%s", want, html)
		}
	}
}

// TestBuildHTMLEmpty verifies the empty state renders without tables.
func TestBuildHTMLEmpty(t *testing.T) {
	html, err := BuildHTML("", nil, nil)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(html, "No sessions recorded yet") {
		t.Fatalf("empty state missing:\n%s", html)
	}
	if strings.Contains(html, "<table>") {
		t.Fatalf("unexpected table in empty report:\n%s", html)
	}
}

// TestBuildHTMLEscapesPlayer verifies untrusted names cannot inject
// markup.
func TestBuildHTMLEscapesPlayer(t *testing.T) {
	html, err := BuildHTML("<script>alert(1)</script>", nil, nil)
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Fatalf("player name not escaped:\n%s", html)
	}
}

package config

import (
	"fmt"
	"strings"

	"mentis/internal/spec"
	"mentis/internal/task"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *spec.Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	switch cfg.Session.UI {
	case "auto", "live", "plain":
	default:
		add("session.ui", fmt.Sprintf("unsupported mode %q", cfg.Session.UI))
	}
	if cfg.Session.Seed < 0 {
		add("session.seed", "must be >= 0")
	}

	if strings.TrimSpace(cfg.Profile.DataDir) == "" {
		add("profile.data_dir", "is required")
	}
	if strings.TrimSpace(cfg.Report.OutputDir) == "" {
		add("report.output_dir", "is required")
	}

	taskIDs := map[string]struct{}{}
	for i, t := range cfg.Tasks {
		fieldPrefix := fmt.Sprintf("tasks[%d]", i)
		id := strings.TrimSpace(t.ID)
		if id == "" {
			add(fieldPrefix+".id", "is required")
		} else if _, exists := taskIDs[id]; exists {
			add("tasks.id", fmt.Sprintf("duplicate id %q", id))
		} else {
			taskIDs[id] = struct{}{}
			if _, known := task.Lookup(id); !known {
				add(fieldPrefix+".id", fmt.Sprintf("unknown task %q", id))
			}
		}
		if t.Level < 1 || t.Level > 10 {
			add(fieldPrefix+".level", "must be between 1 and 10")
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

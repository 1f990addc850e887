package config

import (
	"fmt"
	"strings"

	"mentis/internal/spec"
	"mentis/internal/task"
)

// TaskPlan pairs a registered task with its configured parameters.
type TaskPlan struct {
	Def   task.Definition
	Level int
}

// SelectTasks resolves the configured task list, optionally filtered to
// the requested ids. Requested ids must exist in the config.
func SelectTasks(cfg *spec.Config, ids []string) ([]TaskPlan, error) {
	byID := make(map[string]spec.TaskConfig, len(cfg.Tasks))
	order := make([]string, 0, len(cfg.Tasks))
	for _, t := range cfg.Tasks {
		byID[t.ID] = t
		order = append(order, t.ID)
	}

	selected := order
	if len(ids) > 0 {
		selected = selected[:0:0]
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if _, ok := byID[id]; !ok {
				return nil, fmt.Errorf("task %q is not configured", id)
			}
			selected = append(selected, id)
		}
	}

	plans := make([]TaskPlan, 0, len(selected))
	for _, id := range selected {
		tc := byID[id]
		def, ok := task.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown task %q", id)
		}
		plans = append(plans, TaskPlan{Def: def, Level: tc.Level})
	}
	return plans, nil
}

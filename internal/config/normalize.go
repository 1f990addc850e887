package config

import (
	"strings"

	"mentis/internal/engine"
	"mentis/internal/spec"
	"mentis/internal/task"
)

const defaultLevel = 1

// Normalize fills defaults and clamps per-task levels into the supported
// range. A config with no tasks section gets one entry per registered
// task at the default level.
func Normalize(cfg *spec.Config) {
	if strings.TrimSpace(cfg.Profile.DataDir) == "" {
		cfg.Profile.DataDir = DefaultDataDir
	}
	if strings.TrimSpace(cfg.Session.UI) == "" {
		cfg.Session.UI = "auto"
	}
	if strings.TrimSpace(cfg.Report.OutputDir) == "" {
		cfg.Report.OutputDir = DefaultReportDir
	}
	if strings.TrimSpace(cfg.Report.ServeAddr) == "" {
		cfg.Report.ServeAddr = DefaultServeAddr
	}
	if len(cfg.Tasks) == 0 {
		for _, def := range task.All() {
			cfg.Tasks = append(cfg.Tasks, spec.TaskConfig{ID: def.Name, Level: defaultLevel})
		}
	}
	for i := range cfg.Tasks {
		if cfg.Tasks[i].Level == 0 {
			cfg.Tasks[i].Level = defaultLevel
		}
		cfg.Tasks[i].Level = engine.ClampLevel(cfg.Tasks[i].Level)
	}
}

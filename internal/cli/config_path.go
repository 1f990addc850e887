package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"mentis/internal/config"
	"mentis/internal/spec"
)

// resolveSpecPath normalizes a config path or finds it from CWD.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}

// environment bundles the loaded config with the filesystem locations
// derived from it. Relative directories resolve against the config root.
type environment struct {
	cfg         spec.Config
	root        string
	dataDir     string
	dbPath      string
	profilePath string
	cachePath   string
	outputDir   string
}

// loadEnvironment resolves the config path, loads it, and lays out the
// data and report locations.
func loadEnvironment(specPath string) (*environment, error) {
	resolved, err := resolveSpecPath(specPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return nil, err
	}
	root := config.RootFromConfigPath(resolved)
	dataDir := resolveDir(root, cfg.Profile.DataDir)
	return &environment{
		cfg:         cfg,
		root:        root,
		dataDir:     dataDir,
		dbPath:      filepath.Join(dataDir, "mentis.duckdb"),
		profilePath: filepath.Join(dataDir, "profile.json"),
		cachePath:   filepath.Join(dataDir, "pending.json"),
		outputDir:   resolveDir(root, cfg.Report.OutputDir),
	}, nil
}

// resolveDir anchors a relative directory at the config root.
func resolveDir(root, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

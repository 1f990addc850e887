package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scaffold writes a fresh config file at the given path, creating the
// enclosing directory. It refuses to overwrite an existing file.
func Scaffold(configPath, player string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	rendered, err := renderScaffoldConfig(player)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// renderScaffoldConfig builds the scaffold YAML via the config component.
func renderScaffoldConfig(player string) (string, error) {
	var builder strings.Builder
	if err := ScaffoldConfig(player).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"mentis/internal/cli"
)

// iRunCommand executes a mentis CLI invocation in-process. The token
// <config> expands to the scenario's config path.
func (s *featureState) iRunCommand(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 || fields[0] != "mentis" {
		return fmt.Errorf("unsupported command: %q", command)
	}
	args := make([]string, 0, len(fields)-1)
	for _, field := range fields[1:] {
		if field == "<config>" {
			if s.configPath == "" {
				return fmt.Errorf("no configuration prepared for %q", command)
			}
			field = s.configPath
		}
		args = append(args, field)
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

package report

import (
	"context"
	"strings"

	"mentis/internal/store"
)

// BuildHTML renders the training report into a string.
func BuildHTML(player string, progress []store.TaskProgress, sessions []store.SessionRow) (string, error) {
	var builder strings.Builder
	if err := ReportPage(player, progress, sessions).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

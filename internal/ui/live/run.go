package live

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mentis/internal/engine"
	"mentis/internal/task"
)

// ErrAborted is returned when the user quits before completing a session.
var ErrAborted = errors.New("session aborted")

// Run plays a session in the full-screen UI and returns its result.
// It blocks until the session completes or the user quits.
func Run(session task.Session, stdout io.Writer, opts Options) (engine.Result, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	model := NewModel(session, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return engine.Result{}, err
	}
	finalModel, ok := final.(Model)
	if !ok {
		return engine.Result{}, errors.New("live: unexpected final model")
	}
	if finalModel.Aborted() || !finalModel.session.IsComplete() {
		return engine.Result{}, ErrAborted
	}
	return finalModel.Result(), nil
}

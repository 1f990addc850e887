package live

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentis/internal/engine"
	"mentis/internal/task"
)

// Model drives a training session interactively using Bubble Tea.
type Model struct {
	session      task.Session
	state        State
	prompt       task.Prompt
	hasPrompt    bool
	table        table.Model
	input        string
	now          time.Time
	deadline     time.Time
	tickInterval time.Duration
	noColor      bool
	finished     bool
	aborted      bool
	result       engine.Result
}

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// NewModel constructs a live UI model for a session. The session is
// started here so the first trial is on screen immediately.
func NewModel(session task.Session, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 100 * time.Millisecond
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	session.Start()
	m := Model{
		session:      session,
		state:        NewState(session),
		table:        t,
		now:          time.Now(),
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
	}
	m.state.StartedAt = m.now
	m.syncPrompt()
	return m
}

// Aborted reports whether the user quit before the session finished.
func (m Model) Aborted() bool { return m.aborted }

// Result returns the final session result; valid once the session
// completed without being aborted.
func (m Model) Result() engine.Result { return m.result }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// Update consumes key presses and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-8, 1))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tickMsg:
		m.now = time.Time(typed)
		m = m.checkTimeout()
		return m, tick(m.tickInterval)
	}
	return m, nil
}

// View renders the live session screen.
func (m Model) View() string {
	header := renderHeader(m.state, m.now, m.noColor)
	if m.finished {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			renderResult(m.result, m.noColor),
			m.table.View(),
			renderHint("press any key to exit", m.noColor),
		)
	}
	summary := renderSummary(m.state, m.noColor)
	promptView := renderPrompt(m.prompt, m.hasPrompt, m.noColor)
	inputLine := renderInput(m.prompt, m.input, m.remaining(), m.noColor)
	footer := renderFooter(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, summary, promptView, inputLine, m.table.View(), footer)
}

// handleKey routes a key press by session phase.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if !m.finished {
			m.aborted = true
		}
		return m, tea.Quit
	}
	if m.finished {
		return m, tea.Quit
	}
	switch key.Type {
	case tea.KeyEnter:
		return m.submit(), nil
	case tea.KeyBackspace:
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(key.Runes)
		return m, nil
	}
	return m, nil
}

// submit resolves the enter key: it ends the study phase or records the
// typed response for the current trial.
func (m Model) submit() Model {
	if m.state.Phase == engine.PhaseStudy {
		m.session.FinishStudy()
		m.input = ""
		m.syncPrompt()
		return m
	}
	input := strings.TrimSpace(m.input)
	if input == "" {
		return m
	}
	feedback, ok := m.session.Respond(input)
	if !ok {
		m.state.LastFeedback = "not a valid answer: " + input
		m.input = ""
		return m
	}
	index := m.prompt.Index
	m.session.Advance()
	m.state = Reduce(m.state, TrialEvent{
		Index:     index,
		Input:     input,
		Responded: true,
		Outcome:   feedback.Outcome,
		Correct:   feedback.Correct,
	})
	m.input = ""
	m.afterAdvance()
	return m
}

// checkTimeout advances past the current trial when its response window
// has elapsed without an answer.
func (m Model) checkTimeout() Model {
	if m.finished || m.deadline.IsZero() || m.now.Before(m.deadline) {
		return m
	}
	if m.state.Phase != engine.PhaseRunning && m.state.Phase != engine.PhaseTest {
		return m
	}
	index := m.prompt.Index
	m.session.Advance()
	m.state = Reduce(m.state, TrialEvent{Index: index, Responded: false})
	m.input = ""
	m.afterAdvance()
	return m
}

// afterAdvance refreshes the view state and detects completion.
func (m *Model) afterAdvance() {
	m.table.SetRows(rowsForState(m.state, m.noColor))
	if m.session.IsComplete() {
		m.finished = true
		m.deadline = time.Time{}
		m.hasPrompt = false
		m.state.Phase = engine.PhaseComplete
		m.result = m.session.Result()
		return
	}
	m.syncPrompt()
}

// syncPrompt pulls the current trial view from the session and arms the
// response deadline for timed phases.
func (m *Model) syncPrompt() {
	prompt, ok := m.session.Prompt()
	m.prompt = prompt
	m.hasPrompt = ok
	if ok {
		m.state.Phase = prompt.Phase
		m.state.Current = prompt.Index
		m.state.Total = prompt.Total
	}
	m.deadline = time.Time{}
	if ok && prompt.TimeoutMs > 0 &&
		(prompt.Phase == engine.PhaseRunning || prompt.Phase == engine.PhaseTest) {
		m.deadline = m.now.Add(time.Duration(prompt.TimeoutMs) * time.Millisecond)
	}
}

// remaining reports time left in the current response window.
func (m Model) remaining() time.Duration {
	if m.deadline.IsZero() {
		return 0
	}
	return m.deadline.Sub(m.now)
}

// tickMsg carries a clock tick for timeout checks and redraws.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

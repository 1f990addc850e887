package task

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"mentis/internal/engine"
)

// GridStimulus asks the user to find one number on the shuffled board.
type GridStimulus struct {
	Target int
}

// GridConfig parameterizes the visual-search task.
type GridConfig struct {
	engine.Config
	// Size is the board edge length; the session has Size*Size trials,
	// one per number.
	Size int
}

// GridConfigForLevel maps the difficulty scalar onto a board size and
// response window. Higher levels grow the board and shrink the window.
func GridConfigForLevel(level int) GridConfig {
	level = engine.ClampLevel(level)
	size := engine.ScaleInt(level, 3, 6)
	return GridConfig{
		Config: engine.Config{
			Trials:         size * size,
			TargetRatio:    0,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 4000, 1500),
		},
		Size: size,
	}
}

type gridSession struct {
	base[GridStimulus, int]
	cfg    GridConfig
	layout []int
}

// NewGridSearch builds a visual-search session: the board holds the
// numbers 1..Size*Size in shuffled positions and the user taps them in
// ascending order.
func NewGridSearch(cfg GridConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Size < 2 {
		cfg.Size = 2
	}
	if cfg.Size > 8 {
		cfg.Size = 8
	}
	cfg.Trials = cfg.Size * cfg.Size
	s := &gridSession{cfg: cfg}
	strategies := engine.Strategies[GridStimulus, int]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]GridStimulus, []bool) {
			layout := make([]int, ec.Trials)
			for i := range layout {
				layout[i] = i + 1
			}
			engine.Shuffle(layout, rng)
			s.layout = layout
			stimuli := make([]GridStimulus, ec.Trials)
			for i := range stimuli {
				stimuli[i] = GridStimulus{Target: i + 1}
			}
			return stimuli, nil
		},
		Classify: func(trial engine.Trial[GridStimulus], action int, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.Stimulus.Target)
		},
		Score: func(ec engine.Config, trials []engine.Trial[GridStimulus], responses []engine.Response, durationSeconds float64) engine.Result {
			tally := engine.TallyResponses(responses)
			return engine.BaseResult("gridsearch", ec, tally, durationSeconds)
		},
	}
	s.base = base[GridStimulus, int]{
		name:  "gridsearch",
		title: "Grid Search",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// Layout returns a copy of the shuffled board in row-major order.
func (s *gridSession) Layout() []int {
	out := make([]int, len(s.layout))
	copy(out, s.layout)
	return out
}

func (s *gridSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	prompt.Text = fmt.Sprintf("Find %d", trial.Stimulus.Target)
	prompt.Detail = s.renderBoard()
	return prompt, true
}

func (s *gridSession) Respond(input string) (Feedback, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	return s.respond(n, err == nil)
}

func (s *gridSession) renderBoard() string {
	var sb strings.Builder
	for row := 0; row < s.cfg.Size; row++ {
		for col := 0; col < s.cfg.Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%3d", s.layout[row*s.cfg.Size+col])
		}
		if row < s.cfg.Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func init() {
	register(Definition{
		Name:    "gridsearch",
		Title:   "Grid Search",
		Summary: "Find the numbers on a shuffled board in ascending order.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewGridSearch(GridConfigForLevel(level), clock, rng)
		},
	})
}

package task

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"mentis/internal/engine"
)

// corsiBoardCells is the fixed cell count of the tapping board.
const corsiBoardCells = 9

// corsiMinCellDist keeps the randomized board layout visually spread out.
const corsiMinCellDist = 0.25

// CorsiStep is one element of the sequence the user reproduces.
type CorsiStep struct {
	Cell int
}

// CorsiConfig parameterizes the spatial span task.
type CorsiConfig struct {
	engine.Config
	// Span is the sequence length shown during the study phase.
	Span int
}

// CorsiConfigForLevel maps the difficulty scalar onto the sequence
// length and response window.
func CorsiConfigForLevel(level int) CorsiConfig {
	level = engine.ClampLevel(level)
	span := engine.ScaleInt(level, 3, 9)
	return CorsiConfig{
		Config: engine.Config{
			Trials:         span,
			TargetRatio:    0,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 4000, 2000),
		},
		Span: span,
	}
}

// spanBonusPerStep is the extra credit per step of the reached span.
const spanBonusPerStep = 5.0

type corsiSession struct {
	base[CorsiStep, int]
	cfg   CorsiConfig
	board []engine.Point
}

// NewCorsi builds a spatial span session: a sequence of board cells is
// shown during the study phase and reproduced one step per trial. The
// 9-cell board layout is randomized once per session with a minimum
// distance between cells.
func NewCorsi(cfg CorsiConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Span < 1 {
		cfg.Span = 1
	}
	cfg.Trials = cfg.Span
	s := &corsiSession{cfg: cfg}
	strategies := engine.Strategies[CorsiStep, int]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]CorsiStep, []bool) {
			s.board = engine.PlacePoints(corsiBoardCells, corsiMinCellDist, rng)
			seq := engine.NoRepeatSequence(ec.Trials, corsiBoardCells, rng)
			stimuli := make([]CorsiStep, len(seq))
			for i, cell := range seq {
				stimuli[i] = CorsiStep{Cell: cell}
			}
			return stimuli, nil
		},
		Classify: func(trial engine.Trial[CorsiStep], action int, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.Stimulus.Cell)
		},
		Score: scoreCorsi,
		Study: true,
	}
	s.base = base[CorsiStep, int]{
		name:  "corsi",
		title: "Spatial Span",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// scoreCorsi reports the span reached: the longest correctly reproduced
// prefix of the sequence.
func scoreCorsi(cfg engine.Config, trials []engine.Trial[CorsiStep], responses []engine.Response, durationSeconds float64) engine.Result {
	tally := engine.TallyResponses(responses)
	result := engine.BaseResult("corsi", cfg, tally, durationSeconds)

	span := 0
	byIndex := make(map[int]engine.Response, len(responses))
	for _, resp := range responses {
		byIndex[resp.Index] = resp
	}
	for i := 0; i < len(trials); i++ {
		resp, ok := byIndex[i]
		if !ok || !resp.Correct {
			break
		}
		span++
	}
	result.SpanReached = engine.Int(span)
	return engine.AddBonus(result, spanBonusPerStep*float64(span))
}

// Board returns a copy of the session's randomized cell layout.
func (s *corsiSession) Board() []engine.Point {
	out := make([]engine.Point, len(s.board))
	copy(out, s.board)
	return out
}

func (s *corsiSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	if prompt.Phase == engine.PhaseStudy {
		prompt.Text = "Memorize the sequence"
		prompt.Detail = s.renderSequence()
		return prompt, true
	}
	prompt.Text = fmt.Sprintf("Step %d: which cell lit up?", trial.Index+1)
	prompt.Options = cellOptions(corsiBoardCells)
	return prompt, true
}

func (s *corsiSession) Respond(input string) (Feedback, bool) {
	cell, err := strconv.Atoi(strings.TrimSpace(input))
	return s.respond(cell, err == nil && cell >= 0 && cell < corsiBoardCells)
}

func (s *corsiSession) renderSequence() string {
	parts := make([]string, 0, s.cfg.Span)
	for _, trial := range s.eng.Trials() {
		parts = append(parts, strconv.Itoa(trial.Stimulus.Cell))
	}
	return strings.Join(parts, " ")
}

func cellOptions(cells int) []Option {
	options := make([]Option, cells)
	for i := 0; i < cells; i++ {
		options[i] = Option{Key: strconv.Itoa(i), Label: fmt.Sprintf("cell %d", i)}
	}
	return options
}

func init() {
	register(Definition{
		Name:    "corsi",
		Title:   "Spatial Span",
		Summary: "Reproduce a sequence of board cells from memory.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			cfg := CorsiConfigForLevel(level)
			s := NewCorsi(cfg, clock, rng)
			return s
		},
	})
}

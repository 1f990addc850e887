package task

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"mentis/internal/engine"
)

// bilateralGridSize is the edge length of each side's touch grid.
const bilateralGridSize = 3

// BilateralStimulus highlights one cell on the left grid; the user must
// touch it together with its mirrored cell on the right grid.
type BilateralStimulus struct {
	Left   int
	Mirror int
}

// BilateralAction is the pair of cells the user touched.
type BilateralAction struct {
	Left  int
	Right int
}

// BilateralConfig parameterizes the mirrored-touch coordination task.
type BilateralConfig struct {
	engine.Config
}

// BilateralConfigForLevel maps the difficulty scalar onto trial count and
// response window.
func BilateralConfigForLevel(level int) BilateralConfig {
	level = engine.ClampLevel(level)
	return BilateralConfig{
		Config: engine.Config{
			Trials:         engine.ScaleInt(level, 10, 30),
			TargetRatio:    0,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 3500, 1500),
		},
	}
}

// mirroredTouchBonus is the extra credit per correct mirrored touch.
const mirroredTouchBonus = 4.0

// MirrorCell reflects a cell across the vertical axis of the grid: same
// row, mirrored column.
func MirrorCell(cell int) int {
	row := cell / bilateralGridSize
	col := cell % bilateralGridSize
	return row*bilateralGridSize + (bilateralGridSize - 1 - col)
}

type bilateralSession struct {
	base[BilateralStimulus, BilateralAction]
}

// NewBilateral builds a mirrored-touch session: each trial highlights a
// left-grid cell and the response must name both the cell and its mirror.
func NewBilateral(cfg BilateralConfig, clock engine.Clock, rng *rand.Rand) Session {
	s := &bilateralSession{}
	cells := bilateralGridSize * bilateralGridSize
	strategies := engine.Strategies[BilateralStimulus, BilateralAction]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]BilateralStimulus, []bool) {
			stimuli := make([]BilateralStimulus, len(labels))
			prev := -1
			for i := range labels {
				cell := rng.Intn(cells)
				for cell == prev {
					cell = rng.Intn(cells)
				}
				prev = cell
				stimuli[i] = BilateralStimulus{Left: cell, Mirror: MirrorCell(cell)}
			}
			return stimuli, nil
		},
		Classify: func(trial engine.Trial[BilateralStimulus], action BilateralAction, responded bool) engine.Outcome {
			correct := responded &&
				action.Left == trial.Stimulus.Left &&
				action.Right == trial.Stimulus.Mirror
			return engine.Judge(correct)
		},
		Score: func(ec engine.Config, trials []engine.Trial[BilateralStimulus], responses []engine.Response, durationSeconds float64) engine.Result {
			tally := engine.TallyResponses(responses)
			result := engine.BaseResult("bilateral", ec, tally, durationSeconds)
			return engine.AddBonus(result, mirroredTouchBonus*float64(tally.Correct))
		},
	}
	s.base = base[BilateralStimulus, BilateralAction]{
		name:  "bilateral",
		title: "Mirrored Touch",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

func (s *bilateralSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	prompt.Text = fmt.Sprintf("Left cell %d lit up", trial.Stimulus.Left)
	prompt.Detail = "Enter both cells as \"left right\", mirroring across the center."
	return prompt, true
}

// Respond parses a "left right" cell pair.
func (s *bilateralSession) Respond(input string) (Feedback, bool) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) != 2 {
		return Feedback{}, false
	}
	left, errL := strconv.Atoi(fields[0])
	right, errR := strconv.Atoi(fields[1])
	ok := errL == nil && errR == nil
	return s.respond(BilateralAction{Left: left, Right: right}, ok)
}

func init() {
	register(Definition{
		Name:    "bilateral",
		Title:   "Mirrored Touch",
		Summary: "Touch the lit cell and its mirror on the opposite grid.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewBilateral(BilateralConfigForLevel(level), clock, rng)
		},
	})
}

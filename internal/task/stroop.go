package task

import (
	"fmt"
	"math/rand"
	"strings"

	"mentis/internal/engine"
)

// stroopPalette is the fixed color vocabulary. Levels use a prefix of it.
var stroopPalette = []string{"red", "green", "blue", "yellow", "purple", "orange"}

// StroopStimulus is a color word printed in an ink color. Congruent
// trials set the ink equal to the word.
type StroopStimulus struct {
	Word string
	Ink  string
}

// StroopConfig parameterizes the color-word interference task.
type StroopConfig struct {
	engine.Config
	// Colors is how many palette entries are in play.
	Colors int
}

// StroopConfigForLevel maps the difficulty scalar onto trial count,
// congruent ratio, palette width, and response window. The congruent
// ratio falls with the level: more interference trials is harder.
func StroopConfigForLevel(level int) StroopConfig {
	level = engine.ClampLevel(level)
	return StroopConfig{
		Config: engine.Config{
			Trials:         engine.ScaleInt(level, 10, 30),
			TargetRatio:    float64(engine.ScaleInt(level, 50, 30)) / 100,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 3000, 1200),
		},
		Colors: engine.ScaleInt(level, 4, len(stroopPalette)),
	}
}

// incongruentBonus is the extra credit per correct interference trial.
const incongruentBonus = 5.0

type stroopSession struct {
	base[StroopStimulus, string]
	cfg StroopConfig
}

// NewStroop builds a color-word interference session. The balanced label
// marks congruent trials; incongruent trials sample an ink uniformly
// from the remaining palette.
func NewStroop(cfg StroopConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Colors < 2 {
		cfg.Colors = 2
	}
	if cfg.Colors > len(stroopPalette) {
		cfg.Colors = len(stroopPalette)
	}
	palette := stroopPalette[:cfg.Colors]
	s := &stroopSession{cfg: cfg}
	strategies := engine.Strategies[StroopStimulus, string]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]StroopStimulus, []bool) {
			stimuli := make([]StroopStimulus, len(labels))
			for i, congruent := range labels {
				word := palette[rng.Intn(len(palette))]
				ink := word
				if !congruent {
					// Sample from the palette minus the word so the ink
					// always conflicts.
					offset := 1 + rng.Intn(len(palette)-1)
					ink = palette[(indexOf(palette, word)+offset)%len(palette)]
				}
				stimuli[i] = StroopStimulus{Word: word, Ink: ink}
			}
			return stimuli, nil
		},
		Classify: func(trial engine.Trial[StroopStimulus], action string, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.Stimulus.Ink)
		},
		Score: scoreStroop,
	}
	s.base = base[StroopStimulus, string]{
		name:  "stroop",
		title: "Color Interference",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// scoreStroop adds the congruent/incongruent accuracy split and the
// interference bonus.
func scoreStroop(cfg engine.Config, trials []engine.Trial[StroopStimulus], responses []engine.Response, durationSeconds float64) engine.Result {
	tally := engine.TallyResponses(responses)
	result := engine.BaseResult("stroop", cfg, tally, durationSeconds)

	var congruentCorrect, congruentTotal, incongruentCorrect, incongruentTotal int
	for _, resp := range responses {
		if resp.Index >= len(trials) {
			continue
		}
		if trials[resp.Index].IsTarget {
			congruentTotal++
			if resp.Correct {
				congruentCorrect++
			}
		} else {
			incongruentTotal++
			if resp.Correct {
				incongruentCorrect++
			}
		}
	}
	result.CongruentAcc = engine.Float(engine.Rate(congruentCorrect, congruentTotal))
	result.IncongruentAcc = engine.Float(engine.Rate(incongruentCorrect, incongruentTotal))
	return engine.AddBonus(result, incongruentBonus*float64(incongruentCorrect))
}

func (s *stroopSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	prompt.Text = fmt.Sprintf("%s (ink: %s)", strings.ToUpper(trial.Stimulus.Word), trial.Stimulus.Ink)
	prompt.Options = colorOptions(stroopPalette[:s.cfg.Colors])
	return prompt, true
}

func (s *stroopSession) Respond(input string) (Feedback, bool) {
	color, ok := matchColor(stroopPalette[:s.cfg.Colors], input)
	return s.respond(color, ok)
}

// colorOptions keys each color by its first letter.
func colorOptions(palette []string) []Option {
	options := make([]Option, len(palette))
	for i, color := range palette {
		options[i] = Option{Key: color[:1], Label: color}
	}
	return options
}

// matchColor resolves a key press or full color name against the palette.
func matchColor(palette []string, input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	for _, color := range palette {
		if normalized == color || normalized == color[:1] {
			return color, true
		}
	}
	return "", false
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return 0
}

func init() {
	register(Definition{
		Name:    "stroop",
		Title:   "Color Interference",
		Summary: "Name the ink color while the printed word interferes.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewStroop(StroopConfigForLevel(level), clock, rng)
		},
	})
}

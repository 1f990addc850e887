package task

import (
	"fmt"
	"math/rand"
	"strings"

	"mentis/internal/engine"
)

// gonogoSounds is the auditory stimulus set, rendered by the UI as
// labeled tones.
var gonogoSounds = []string{"beep", "chime", "ding", "horn", "click", "tap"}

// GoNoGoStimulus is one sound presentation.
type GoNoGoStimulus struct {
	Sound string
}

// GoNoGoConfig parameterizes the auditory go/no-go task.
type GoNoGoConfig struct {
	engine.Config
	// Sounds is how many stimuli are in play, including the target.
	Sounds int
}

// GoNoGoConfigForLevel maps the difficulty scalar onto trial count,
// stimulus-set width, and response window.
func GoNoGoConfigForLevel(level int) GoNoGoConfig {
	level = engine.ClampLevel(level)
	return GoNoGoConfig{
		Config: engine.Config{
			Trials:         engine.ScaleInt(level, 20, 45),
			TargetRatio:    0.3,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 2000, 900),
		},
		Sounds: engine.ScaleInt(level, 3, len(gonogoSounds)),
	}
}

type gonogoSession struct {
	base[GoNoGoStimulus, struct{}]
	cfg    GoNoGoConfig
	target string
}

// NewGoNoGo builds an auditory go/no-go session. One sound is fixed as
// the session target; target trials reuse it and non-target trials sample
// uniformly from the remaining set.
func NewGoNoGo(cfg GoNoGoConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Sounds < 2 {
		cfg.Sounds = 2
	}
	if cfg.Sounds > len(gonogoSounds) {
		cfg.Sounds = len(gonogoSounds)
	}
	sounds := gonogoSounds[:cfg.Sounds]
	s := &gonogoSession{cfg: cfg}
	strategies := engine.Strategies[GoNoGoStimulus, struct{}]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]GoNoGoStimulus, []bool) {
			target := sounds[rng.Intn(len(sounds))]
			s.target = target
			stimuli := make([]GoNoGoStimulus, len(labels))
			for i, isTarget := range labels {
				if isTarget {
					stimuli[i] = GoNoGoStimulus{Sound: target}
					continue
				}
				sound := sounds[rng.Intn(len(sounds))]
				for sound == target {
					sound = sounds[rng.Intn(len(sounds))]
				}
				stimuli[i] = GoNoGoStimulus{Sound: sound}
			}
			return stimuli, nil
		},
		Classify: func(trial engine.Trial[GoNoGoStimulus], _ struct{}, responded bool) engine.Outcome {
			return engine.Detect(trial.IsTarget, responded)
		},
		Score: func(ec engine.Config, trials []engine.Trial[GoNoGoStimulus], responses []engine.Response, durationSeconds float64) engine.Result {
			return scoreDetection("gonogo", ec, responses, durationSeconds)
		},
	}
	s.base = base[GoNoGoStimulus, struct{}]{
		name:  "gonogo",
		title: "Go / No-Go",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// Target returns the session's fixed target sound.
func (s *gonogoSession) Target() string { return s.target }

func (s *gonogoSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	prompt.Text = fmt.Sprintf("♪ %s", trial.Stimulus.Sound)
	prompt.Detail = fmt.Sprintf("Press space only for %q.", s.target)
	prompt.Options = []Option{{Key: " ", Label: "go"}}
	return prompt, true
}

func (s *gonogoSession) Respond(input string) (Feedback, bool) {
	_ = strings.TrimSpace(input)
	return s.respond(struct{}{}, true)
}

func init() {
	register(Definition{
		Name:    "gonogo",
		Title:   "Go / No-Go",
		Summary: "Respond to the target sound, withhold for everything else.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewGoNoGo(GoNoGoConfigForLevel(level), clock, rng)
		},
	})
}

package task

import (
	"fmt"
	"math/rand"
	"strings"

	"mentis/internal/engine"
)

// nbackSymbols is the symbol alphabet for the stream.
var nbackSymbols = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// NBackStimulus is one element of the symbol stream.
type NBackStimulus struct {
	Symbol string
}

// NBackConfig parameterizes the N-back task.
type NBackConfig struct {
	engine.Config
	// N is how many steps back the match refers to.
	N int
}

// NBackConfigForLevel maps the difficulty scalar onto stream length, N,
// and response window.
func NBackConfigForLevel(level int) NBackConfig {
	level = engine.ClampLevel(level)
	return NBackConfig{
		Config: engine.Config{
			Trials:         engine.ScaleInt(level, 15, 40),
			TargetRatio:    0.3,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 2500, 1500),
		},
		N: 1 + (level-1)/4,
	}
}

type nbackSession struct {
	base[NBackStimulus, struct{}]
	cfg NBackConfig
}

// NewNBack builds an N-back session. The stream is constructed so a
// position is a target exactly when its symbol equals the one N steps
// back; the target labels are recomputed from the realized stream, never
// fabricated.
func NewNBack(cfg NBackConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.N < 1 {
		cfg.N = 1
	}
	if cfg.N > 3 {
		cfg.N = 3
	}
	n := cfg.N
	s := &nbackSession{cfg: cfg}
	strategies := engine.Strategies[NBackStimulus, struct{}]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]NBackStimulus, []bool) {
			stream := buildNBackStream(labels, n, rng)
			stimuli := make([]NBackStimulus, len(stream))
			realized := make([]bool, len(stream))
			for i, symbol := range stream {
				stimuli[i] = NBackStimulus{Symbol: symbol}
				realized[i] = i >= n && stream[i] == stream[i-n]
			}
			return stimuli, realized
		},
		Classify: func(trial engine.Trial[NBackStimulus], _ struct{}, responded bool) engine.Outcome {
			return engine.Detect(trial.IsTarget, responded)
		},
		Score: func(ec engine.Config, trials []engine.Trial[NBackStimulus], responses []engine.Response, durationSeconds float64) engine.Result {
			return scoreDetection("nback", ec, responses, durationSeconds)
		},
	}
	s.base = base[NBackStimulus, struct{}]{
		name:  "nback",
		title: fmt.Sprintf("%d-Back", n),
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// buildNBackStream realizes a symbol stream from a balanced target
// assignment. The first N positions cannot be targets, so planned targets
// there are relocated to later non-target slots first; each target slot
// then copies the symbol N back and each non-target slot samples a symbol
// guaranteed not to match.
func buildNBackStream(labels []bool, n int, rng *rand.Rand) []string {
	total := len(labels)
	plan := make([]bool, total)
	copy(plan, labels)

	for i := 0; i < n && i < total; i++ {
		if !plan[i] {
			continue
		}
		plan[i] = false
		for j := total - 1; j >= n; j-- {
			if !plan[j] {
				plan[j] = true
				break
			}
		}
	}

	stream := make([]string, total)
	for i := 0; i < total; i++ {
		if i < n || !plan[i] {
			symbol := nbackSymbols[rng.Intn(len(nbackSymbols))]
			if i >= n {
				// Re-draw away from the N-back symbol so a non-target
				// slot never collides into an accidental match.
				for symbol == stream[i-n] {
					symbol = nbackSymbols[rng.Intn(len(nbackSymbols))]
				}
			}
			stream[i] = symbol
			continue
		}
		stream[i] = stream[i-n]
	}
	return stream
}

// scoreDetection is the shared scorer for the signal-detection tasks.
func scoreDetection(name string, cfg engine.Config, responses []engine.Response, durationSeconds float64) engine.Result {
	tally := engine.TallyResponses(responses)
	result := engine.BaseResult(name, cfg, tally, durationSeconds)
	hitRate := tally.HitRate()
	faRate := tally.FalseAlarmRate()
	result.HitRate = engine.Float(hitRate)
	result.FalseAlarmRate = engine.Float(faRate)
	result.DPrime = engine.Float(engine.Round2(engine.DPrime(hitRate, faRate)))
	return result
}

func (s *nbackSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	prompt.Text = trial.Stimulus.Symbol
	prompt.Detail = fmt.Sprintf("Press space if it matches the symbol %d back.", s.cfg.N)
	prompt.Options = []Option{{Key: " ", Label: "match"}}
	return prompt, true
}

func (s *nbackSession) Respond(input string) (Feedback, bool) {
	// Any press is the match claim; withholding is expressed by the
	// caller advancing without a response.
	_ = strings.TrimSpace(input)
	return s.respond(struct{}{}, true)
}

func init() {
	register(Definition{
		Name:    "nback",
		Title:   "N-Back",
		Summary: "Press when the symbol matches the one N steps earlier.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewNBack(NBackConfigForLevel(level), clock, rng)
		},
	})
}

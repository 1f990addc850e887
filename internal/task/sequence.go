package task

import (
	"fmt"
	"math/rand"
	"strings"

	"mentis/internal/engine"
)

// sequenceSymbols is the symbol alphabet for sequence repetition.
var sequenceSymbols = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// SequenceConfig parameterizes the sequence-repetition task.
type SequenceConfig struct {
	engine.Config
	// Length is the sequence length to reproduce.
	Length int
	// Symbols is how many distinct symbols the sequence draws from.
	Symbols int
}

// SequenceConfigForLevel maps the difficulty scalar onto sequence
// length, alphabet size, and response window.
func SequenceConfigForLevel(level int) SequenceConfig {
	level = engine.ClampLevel(level)
	length := engine.ScaleInt(level, 3, 9)
	return SequenceConfig{
		Config: engine.Config{
			Trials:         length,
			TargetRatio:    0,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 4000, 2000),
		},
		Length:  length,
		Symbols: engine.ScaleInt(level, 4, len(sequenceSymbols)),
	}
}

// sequenceBonusPerStep is the extra credit per step of the longest
// correctly reproduced prefix.
const sequenceBonusPerStep = 5.0

type sequenceSession struct {
	base[string, string]
	cfg SequenceConfig
}

// NewSequence builds a sequence-repetition session: a symbol sequence
// with no immediate repeats is shown during study, then reproduced one
// step at a time.
func NewSequence(cfg SequenceConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Length < 2 {
		cfg.Length = 2
	}
	if cfg.Symbols < 2 {
		cfg.Symbols = 2
	}
	if cfg.Symbols > len(sequenceSymbols) {
		cfg.Symbols = len(sequenceSymbols)
	}
	cfg.Trials = cfg.Length
	s := &sequenceSession{cfg: cfg}
	strategies := engine.Strategies[string, string]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]string, []bool) {
			order := engine.NoRepeatSequence(ec.Trials, cfg.Symbols, rng)
			symbols := make([]string, len(order))
			for i, idx := range order {
				symbols[i] = sequenceSymbols[idx]
			}
			return symbols, nil
		},
		Classify: func(trial engine.Trial[string], action string, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.Stimulus)
		},
		Score:    scoreSequence(cfg),
		Study:    true,
	}
	s.base = base[string, string]{
		name:  "sequence",
		title: "Sequence Repeat",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// scoreSequence credits the longest correctly reproduced prefix as the
// reached span.
func scoreSequence(cfg SequenceConfig) engine.Scorer[string] {
	return func(ec engine.Config, trials []engine.Trial[string], responses []engine.Response, durationSeconds float64) engine.Result {
		tally := engine.TallyResponses(responses)
		result := engine.BaseResult("sequence", ec, tally, durationSeconds)
		byIndex := make(map[int]bool, len(responses))
		for _, resp := range responses {
			byIndex[resp.Index] = resp.Correct
		}
		span := 0
		for i := 0; i < ec.Trials; i++ {
			if !byIndex[i] {
				break
			}
			span++
		}
		result.SpanReached = engine.Int(span)
		return engine.AddBonus(result, sequenceBonusPerStep*float64(span))
	}
}

func (s *sequenceSession) Prompt() (Prompt, bool) {
	prompt, _, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	if prompt.Phase == engine.PhaseStudy {
		prompt.Text = "Memorize the sequence"
		prompt.Detail = s.renderSequence()
		return prompt, true
	}
	prompt.Text = fmt.Sprintf("Symbol %d of %d?", prompt.Index+1, prompt.Total)
	options := make([]Option, s.cfg.Symbols)
	for i, sym := range sequenceSymbols[:s.cfg.Symbols] {
		options[i] = Option{Key: strings.ToLower(sym), Label: sym}
	}
	prompt.Options = options
	return prompt, true
}

func (s *sequenceSession) Respond(input string) (Feedback, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(input))
	for _, candidate := range sequenceSymbols[:s.cfg.Symbols] {
		if symbol == candidate {
			return s.respond(symbol, true)
		}
	}
	return Feedback{}, false
}

func (s *sequenceSession) renderSequence() string {
	parts := make([]string, 0, s.cfg.Length)
	for _, trial := range s.eng.Trials() {
		parts = append(parts, trial.Stimulus)
	}
	return strings.Join(parts, " ")
}

func init() {
	register(Definition{
		Name:    "sequence",
		Title:   "Sequence Repeat",
		Summary: "Memorize a symbol sequence, then reproduce it in order.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewSequence(SequenceConfigForLevel(level), clock, rng)
		},
	})
}

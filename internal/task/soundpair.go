package task

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"mentis/internal/engine"
)

// soundPairBank lists the named tones available for pairing.
var soundPairBank = []string{"chime", "drum", "bell", "whistle", "click", "horn", "harp", "gong"}

// SoundPairStimulus is one forced-choice probe: a cue sound, the set of
// candidate answers, and the index of the true partner within Choices.
type SoundPairStimulus struct {
	Cue     string
	Choices []string
	Answer  int
}

// SoundPairConfig parameterizes the sound-pair matching task.
type SoundPairConfig struct {
	engine.Config
	// Pairs is how many cue/partner pairs are studied.
	Pairs int
	// Choices is the forced-choice fan-out per probe.
	Choices int
}

// SoundPairConfigForLevel maps the difficulty scalar onto pair count,
// choice fan-out, and response window.
func SoundPairConfigForLevel(level int) SoundPairConfig {
	level = engine.ClampLevel(level)
	pairs := engine.ScaleInt(level, 3, len(soundPairBank)/2)
	return SoundPairConfig{
		Config: engine.Config{
			Trials:         pairs,
			TargetRatio:    0,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 5000, 2500),
		},
		Pairs:   pairs,
		Choices: engine.ScaleInt(level, 2, 4),
	}
}

// soundPairBonus is the extra credit per correctly matched pair.
const soundPairBonus = 4.0

type soundPairSession struct {
	base[SoundPairStimulus, int]
	cfg SoundPairConfig
}

// NewSoundPair builds a sound-pair session: disjoint cue/partner pairs
// are presented during study, then each cue is probed with a small
// forced-choice set containing the true partner and distractors drawn
// from the other partners.
func NewSoundPair(cfg SoundPairConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Pairs < 2 {
		cfg.Pairs = 2
	}
	if cfg.Pairs > len(soundPairBank)/2 {
		cfg.Pairs = len(soundPairBank) / 2
	}
	if cfg.Choices < 2 {
		cfg.Choices = 2
	}
	if cfg.Choices > cfg.Pairs {
		cfg.Choices = cfg.Pairs
	}
	cfg.Trials = cfg.Pairs
	s := &soundPairSession{cfg: cfg}
	strategies := engine.Strategies[SoundPairStimulus, int]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]SoundPairStimulus, []bool) {
			sounds := make([]string, len(soundPairBank))
			copy(sounds, soundPairBank)
			engine.Shuffle(sounds, rng)
			cues := sounds[:cfg.Pairs]
			partners := sounds[cfg.Pairs : 2*cfg.Pairs]
			stimuli := make([]SoundPairStimulus, ec.Trials)
			for i := range stimuli {
				stimuli[i] = SoundPairStimulus{
					Cue:     cues[i],
					Choices: sampleChoices(partners, i, cfg.Choices, rng),
				}
				for j, choice := range stimuli[i].Choices {
					if choice == partners[i] {
						stimuli[i].Answer = j
					}
				}
			}
			return stimuli, nil
		},
		Classify: func(trial engine.Trial[SoundPairStimulus], action int, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.Stimulus.Answer)
		},
		Score: func(ec engine.Config, trials []engine.Trial[SoundPairStimulus], responses []engine.Response, durationSeconds float64) engine.Result {
			tally := engine.TallyResponses(responses)
			result := engine.BaseResult("soundpair", ec, tally, durationSeconds)
			return engine.AddBonus(result, soundPairBonus*float64(tally.Correct))
		},
		Study: true,
	}
	s.base = base[SoundPairStimulus, int]{
		name:  "soundpair",
		title: "Sound Pairs",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// sampleChoices returns the true partner plus distractor partners, in
// shuffled order.
func sampleChoices(partners []string, answer, count int, rng *rand.Rand) []string {
	pool := make([]int, 0, len(partners)-1)
	for i := range partners {
		if i != answer {
			pool = append(pool, i)
		}
	}
	engine.Shuffle(pool, rng)
	choices := make([]string, 0, count)
	choices = append(choices, partners[answer])
	for _, i := range pool[:count-1] {
		choices = append(choices, partners[i])
	}
	engine.Shuffle(choices, rng)
	return choices
}

func (s *soundPairSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	if prompt.Phase == engine.PhaseStudy {
		prompt.Text = "Learn the pairs"
		prompt.Detail = s.renderPairs()
		return prompt, true
	}
	prompt.Text = fmt.Sprintf("Which sound pairs with %q?", trial.Stimulus.Cue)
	options := make([]Option, len(trial.Stimulus.Choices))
	for i, choice := range trial.Stimulus.Choices {
		options[i] = Option{Key: strconv.Itoa(i + 1), Label: choice}
	}
	prompt.Options = options
	return prompt, true
}

func (s *soundPairSession) Respond(input string) (Feedback, bool) {
	trial := s.eng.CurrentTrial()
	if trial == nil {
		return Feedback{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	ok := err == nil && n >= 1 && n <= len(trial.Stimulus.Choices)
	return s.respond(n-1, ok)
}

func (s *soundPairSession) renderPairs() string {
	parts := make([]string, 0, s.cfg.Pairs)
	for _, trial := range s.eng.Trials() {
		parts = append(parts, fmt.Sprintf("%s + %s", trial.Stimulus.Cue, trial.Stimulus.Choices[trial.Stimulus.Answer]))
	}
	return strings.Join(parts, "; ")
}

func init() {
	register(Definition{
		Name:    "soundpair",
		Title:   "Sound Pairs",
		Summary: "Learn sound pairings, then pick each cue's partner.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewSoundPair(SoundPairConfigForLevel(level), clock, rng)
		},
	})
}

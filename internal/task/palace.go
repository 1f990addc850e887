package task

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"mentis/internal/engine"
)

// Anchor and item vocabularies for the memory palace.
var (
	palaceAnchors = []string{"door", "window", "fireplace", "staircase", "mirror", "bookshelf", "clock", "armchair"}
	palaceItems   = []string{"key", "apple", "coin", "letter", "candle", "feather", "bell", "rose", "map", "ring"}
)

// palaceMinAnchorDist keeps anchor positions from overlapping in the
// rendered room.
const palaceMinAnchorDist = 0.22

// PalacePlacement pairs an item with the anchor it was placed on.
type PalacePlacement struct {
	Item   string
	Anchor int
}

// PalaceConfig parameterizes the memory-palace placement task.
type PalaceConfig struct {
	engine.Config
	// Anchors is how many room anchors are available.
	Anchors int
}

// PalaceConfigForLevel maps the difficulty scalar onto anchor count,
// placement count, and response window.
func PalaceConfigForLevel(level int) PalaceConfig {
	level = engine.ClampLevel(level)
	anchors := engine.ScaleInt(level, 3, len(palaceAnchors))
	return PalaceConfig{
		Config: engine.Config{
			Trials:         anchors,
			TargetRatio:    0,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 6000, 3000),
		},
		Anchors: anchors,
	}
}

// placementBonus is the extra credit per correctly recalled placement.
const placementBonus = 5.0

type palaceSession struct {
	base[PalacePlacement, int]
	cfg       PalaceConfig
	positions []engine.Point
}

// NewPalace builds a memory-palace session: each item is placed on a
// distinct anchor during the study phase; the test asks for each item's
// anchor. Anchor positions are sampled with a minimum pairwise distance.
func NewPalace(cfg PalaceConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Anchors < 2 {
		cfg.Anchors = 2
	}
	if cfg.Anchors > len(palaceAnchors) {
		cfg.Anchors = len(palaceAnchors)
	}
	cfg.Trials = cfg.Anchors
	s := &palaceSession{cfg: cfg}
	strategies := engine.Strategies[PalacePlacement, int]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]PalacePlacement, []bool) {
			s.positions = engine.PlacePoints(cfg.Anchors, palaceMinAnchorDist, rng)
			items := make([]string, len(palaceItems))
			copy(items, palaceItems)
			engine.Shuffle(items, rng)
			anchors := make([]int, cfg.Anchors)
			for i := range anchors {
				anchors[i] = i
			}
			engine.Shuffle(anchors, rng)
			placements := make([]PalacePlacement, ec.Trials)
			for i := range placements {
				placements[i] = PalacePlacement{Item: items[i], Anchor: anchors[i]}
			}
			return placements, nil
		},
		Classify: func(trial engine.Trial[PalacePlacement], action int, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.Stimulus.Anchor)
		},
		Score: func(ec engine.Config, trials []engine.Trial[PalacePlacement], responses []engine.Response, durationSeconds float64) engine.Result {
			tally := engine.TallyResponses(responses)
			result := engine.BaseResult("palace", ec, tally, durationSeconds)
			return engine.AddBonus(result, placementBonus*float64(tally.Correct))
		},
		Study: true,
	}
	s.base = base[PalacePlacement, int]{
		name:  "palace",
		title: "Memory Palace",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// AnchorPositions returns a copy of the room's anchor layout.
func (s *palaceSession) AnchorPositions() []engine.Point {
	out := make([]engine.Point, len(s.positions))
	copy(out, s.positions)
	return out
}

func (s *palaceSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	if prompt.Phase == engine.PhaseStudy {
		prompt.Text = "Walk the palace"
		prompt.Detail = s.renderPlacements()
		return prompt, true
	}
	prompt.Text = fmt.Sprintf("Where was the %s?", trial.Stimulus.Item)
	prompt.Options = s.anchorOptions()
	return prompt, true
}

func (s *palaceSession) Respond(input string) (Feedback, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if n, err := strconv.Atoi(normalized); err == nil {
		return s.respond(n, n >= 0 && n < s.cfg.Anchors)
	}
	for i, name := range palaceAnchors[:s.cfg.Anchors] {
		if normalized == name {
			return s.respond(i, true)
		}
	}
	return Feedback{}, false
}

func (s *palaceSession) renderPlacements() string {
	parts := make([]string, 0, s.cfg.Anchors)
	for _, trial := range s.eng.Trials() {
		parts = append(parts, fmt.Sprintf("%s on the %s", trial.Stimulus.Item, palaceAnchors[trial.Stimulus.Anchor]))
	}
	return strings.Join(parts, "; ")
}

func (s *palaceSession) anchorOptions() []Option {
	options := make([]Option, s.cfg.Anchors)
	for i, name := range palaceAnchors[:s.cfg.Anchors] {
		options[i] = Option{Key: strconv.Itoa(i), Label: name}
	}
	return options
}

func init() {
	register(Definition{
		Name:    "palace",
		Title:   "Memory Palace",
		Summary: "Place items on room anchors, then recall each location.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewPalace(PalaceConfigForLevel(level), clock, rng)
		},
	})
}

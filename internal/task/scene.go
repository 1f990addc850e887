package task

import (
	"fmt"
	"math/rand"
	"strings"

	"mentis/internal/engine"
)

// Scene element vocabularies.
var (
	sceneShapes = []string{"circle", "square", "triangle", "star", "diamond"}
	sceneColors = []string{"red", "green", "blue", "yellow", "purple"}
)

// sceneMinElementDist keeps scene elements from visually overlapping.
const sceneMinElementDist = 0.18

// SceneElement is one placed object the user memorizes.
type SceneElement struct {
	Shape    string
	Color    string
	Position engine.Point
}

// SceneQuestion probes whether an object was present in the scene.
type SceneQuestion struct {
	Shape string
	Color string
}

// SceneConfig parameterizes the scene recall task.
type SceneConfig struct {
	engine.Config
	// Elements is how many objects the studied scene contains.
	Elements int
}

// SceneConfigForLevel maps the difficulty scalar onto scene size,
// question count, and response window.
func SceneConfigForLevel(level int) SceneConfig {
	level = engine.ClampLevel(level)
	return SceneConfig{
		Config: engine.Config{
			Trials:         engine.ScaleInt(level, 6, 14),
			TargetRatio:    0.5,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 5000, 2500),
		},
		Elements: engine.ScaleInt(level, 4, 9),
	}
}

type sceneSession struct {
	base[SceneQuestion, bool]
	cfg      SceneConfig
	elements []SceneElement
}

// NewScene builds a scene recall session: elements are placed with a
// minimum pairwise distance, studied, then probed with present/absent
// questions. Present questions sample studied elements; absent questions
// sample shape/color combinations missing from the scene.
func NewScene(cfg SceneConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Elements < 2 {
		cfg.Elements = 2
	}
	s := &sceneSession{cfg: cfg}
	strategies := engine.Strategies[SceneQuestion, bool]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]SceneQuestion, []bool) {
			s.elements = generateScene(cfg.Elements, rng)
			present := make(map[SceneQuestion]bool, len(s.elements))
			for _, el := range s.elements {
				present[SceneQuestion{Shape: el.Shape, Color: el.Color}] = true
			}
			questions := make([]SceneQuestion, len(labels))
			for i, wantPresent := range labels {
				questions[i] = sampleQuestion(s.elements, present, wantPresent, rng)
			}
			// The rejection loop can exhaust on tiny scenes; recompute
			// the labels from the realized questions.
			realized := make([]bool, len(questions))
			for i, q := range questions {
				realized[i] = present[q]
			}
			return questions, realized
		},
		Classify: func(trial engine.Trial[SceneQuestion], action bool, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.IsTarget)
		},
		Score: func(ec engine.Config, trials []engine.Trial[SceneQuestion], responses []engine.Response, durationSeconds float64) engine.Result {
			tally := engine.TallyResponses(responses)
			return engine.BaseResult("scene", ec, tally, durationSeconds)
		},
		Study: true,
	}
	s.base = base[SceneQuestion, bool]{
		name:  "scene",
		title: "Scene Recall",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// generateScene places distinct shape/color elements with a minimum
// pairwise distance.
func generateScene(count int, rng *rand.Rand) []SceneElement {
	positions := engine.PlacePoints(count, sceneMinElementDist, rng)
	elements := make([]SceneElement, count)
	used := make(map[SceneQuestion]bool, count)
	for i := range elements {
		var q SceneQuestion
		for attempt := 0; attempt < 32; attempt++ {
			q = SceneQuestion{
				Shape: sceneShapes[rng.Intn(len(sceneShapes))],
				Color: sceneColors[rng.Intn(len(sceneColors))],
			}
			if !used[q] {
				break
			}
		}
		used[q] = true
		elements[i] = SceneElement{Shape: q.Shape, Color: q.Color, Position: positions[i]}
	}
	return elements
}

// sampleQuestion draws a present or absent probe with a bounded
// rejection loop, accepting the last candidate on exhaustion.
func sampleQuestion(elements []SceneElement, present map[SceneQuestion]bool, wantPresent bool, rng *rand.Rand) SceneQuestion {
	if wantPresent {
		el := elements[rng.Intn(len(elements))]
		return SceneQuestion{Shape: el.Shape, Color: el.Color}
	}
	var q SceneQuestion
	for attempt := 0; attempt < 32; attempt++ {
		q = SceneQuestion{
			Shape: sceneShapes[rng.Intn(len(sceneShapes))],
			Color: sceneColors[rng.Intn(len(sceneColors))],
		}
		if !present[q] {
			return q
		}
	}
	return q
}

// Elements returns a copy of the studied scene.
func (s *sceneSession) Elements() []SceneElement {
	out := make([]SceneElement, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *sceneSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	if prompt.Phase == engine.PhaseStudy {
		prompt.Text = "Memorize the scene"
		prompt.Detail = s.renderScene()
		return prompt, true
	}
	prompt.Text = fmt.Sprintf("Was there a %s %s?", trial.Stimulus.Color, trial.Stimulus.Shape)
	prompt.Options = []Option{{Key: "y", Label: "yes"}, {Key: "n", Label: "no"}}
	return prompt, true
}

func (s *sceneSession) Respond(input string) (Feedback, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return s.respond(true, true)
	case "n", "no":
		return s.respond(false, true)
	default:
		return Feedback{}, false
	}
}

func (s *sceneSession) renderScene() string {
	parts := make([]string, len(s.elements))
	for i, el := range s.elements {
		parts[i] = fmt.Sprintf("%s %s", el.Color, el.Shape)
	}
	return strings.Join(parts, ", ")
}

func init() {
	register(Definition{
		Name:    "scene",
		Title:   "Scene Recall",
		Summary: "Study a scene, then answer what it contained.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewScene(SceneConfigForLevel(level), clock, rng)
		},
	})
}

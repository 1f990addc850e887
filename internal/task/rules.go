package task

import (
	"fmt"
	"math/rand"
	"strings"

	"mentis/internal/engine"
)

// Attribute vocabularies for rule-discovery items.
var (
	ruleShapes = []string{"circle", "square", "triangle"}
	ruleColors = []string{"red", "green", "blue"}
	ruleSizes  = []string{"small", "large"}
)

// RuleItem is a stimulus with three independent attributes; the block
// field ties it to the hidden rule in force when it was generated.
type RuleItem struct {
	Shape string
	Color string
	Size  string
	Block int
}

// Rule is a conjunctive predicate over one to three attributes. Empty
// fields are wildcards. Matches is deterministic: the same item always
// yields the same boolean.
type Rule struct {
	Shape string
	Color string
	Size  string
}

// Matches reports whether an item satisfies the rule.
func (r Rule) Matches(item RuleItem) bool {
	if r.Shape != "" && item.Shape != r.Shape {
		return false
	}
	if r.Color != "" && item.Color != r.Color {
		return false
	}
	if r.Size != "" && item.Size != r.Size {
		return false
	}
	return true
}

// RulesConfig parameterizes the rule-discovery classification task.
type RulesConfig struct {
	engine.Config
	// Blocks is how many hidden rules the session cycles through.
	Blocks int
	// BlockTrials is how many items each rule governs.
	BlockTrials int
	// Attributes is how many attributes each hidden rule constrains.
	Attributes int
}

// RulesConfigForLevel maps the difficulty scalar onto block count, block
// length, rule complexity, and response window.
func RulesConfigForLevel(level int) RulesConfig {
	level = engine.ClampLevel(level)
	blocks := engine.ScaleInt(level, 1, 3)
	blockTrials := engine.ScaleInt(level, 8, 12)
	return RulesConfig{
		Config: engine.Config{
			Trials:         blocks * blockTrials,
			TargetRatio:    0.5,
			Level:          level,
			TrialTimeoutMs: engine.ScaleInt(level, 5000, 2500),
		},
		Blocks:      blocks,
		BlockTrials: blockTrials,
		Attributes:  engine.ScaleInt(level, 1, 3),
	}
}

// Discovery and scoring constants: a rule counts as discovered when the
// tail of its block is answered correctly.
const (
	ruleDiscoveryWindow = 4
	ruleDiscoveryBonus  = 15.0
)

type rulesSession struct {
	base[RuleItem, bool]
	cfg   RulesConfig
	rules []Rule
}

// NewRules builds a rule-discovery session: each block hides a
// conjunctive rule and the user classifies items as matching or not,
// learning the rule from the correctness feedback.
func NewRules(cfg RulesConfig, clock engine.Clock, rng *rand.Rand) Session {
	if cfg.Blocks < 1 {
		cfg.Blocks = 1
	}
	if cfg.BlockTrials < ruleDiscoveryWindow {
		cfg.BlockTrials = ruleDiscoveryWindow
	}
	cfg.Attributes = clampAttrs(cfg.Attributes)
	cfg.Trials = cfg.Blocks * cfg.BlockTrials
	s := &rulesSession{cfg: cfg}
	strategies := engine.Strategies[RuleItem, bool]{
		Generate: func(ec engine.Config, labels []bool, rng *rand.Rand) ([]RuleItem, []bool) {
			s.rules = make([]Rule, cfg.Blocks)
			stimuli := make([]RuleItem, 0, ec.Trials)
			matches := make([]bool, 0, ec.Trials)
			for block := 0; block < cfg.Blocks; block++ {
				rule := randomRule(cfg.Attributes, rng)
				s.rules[block] = rule
				// Rebalance within the block so roughly half the items
				// match the hidden rule.
				blockLabels := engine.Balance(cfg.BlockTrials, ec.TargetRatio, rng)
				for _, shouldMatch := range blockLabels {
					item := randomRuleItem(block, rule, shouldMatch, rng)
					stimuli = append(stimuli, item)
					matches = append(matches, rule.Matches(item))
				}
			}
			return stimuli, matches
		},
		Classify: func(trial engine.Trial[RuleItem], action bool, responded bool) engine.Outcome {
			return engine.Judge(responded && action == trial.IsTarget)
		},
		Score: s.score,
	}
	s.base = base[RuleItem, bool]{
		name:  "rules",
		title: "Rule Discovery",
		eng:   engine.New(cfg.Config, strategies, clock, rng),
	}
	return s
}

// randomRule draws a conjunctive rule over attrs distinct attributes.
func randomRule(attrs int, rng *rand.Rand) Rule {
	dims := []int{0, 1, 2}
	engine.Shuffle(dims, rng)
	var rule Rule
	for _, dim := range dims[:attrs] {
		switch dim {
		case 0:
			rule.Shape = ruleShapes[rng.Intn(len(ruleShapes))]
		case 1:
			rule.Color = ruleColors[rng.Intn(len(ruleColors))]
		default:
			rule.Size = ruleSizes[rng.Intn(len(ruleSizes))]
		}
	}
	return rule
}

// randomRuleItem draws an item, forcing or breaking the rule match. A
// bounded rejection loop handles the non-matching case; on exhaustion the
// last candidate is accepted and the realized label is recomputed by the
// caller anyway.
func randomRuleItem(block int, rule Rule, shouldMatch bool, rng *rand.Rand) RuleItem {
	for attempt := 0; attempt < 32; attempt++ {
		item := RuleItem{
			Shape: ruleShapes[rng.Intn(len(ruleShapes))],
			Color: ruleColors[rng.Intn(len(ruleColors))],
			Size:  ruleSizes[rng.Intn(len(ruleSizes))],
			Block: block,
		}
		if shouldMatch {
			if rule.Shape != "" {
				item.Shape = rule.Shape
			}
			if rule.Color != "" {
				item.Color = rule.Color
			}
			if rule.Size != "" {
				item.Size = rule.Size
			}
			return item
		}
		if !rule.Matches(item) {
			return item
		}
	}
	return RuleItem{Shape: ruleShapes[0], Color: ruleColors[0], Size: ruleSizes[0], Block: block}
}

// score counts a rule as discovered when the final responses of its
// block are all correct.
func (s *rulesSession) score(cfg engine.Config, trials []engine.Trial[RuleItem], responses []engine.Response, durationSeconds float64) engine.Result {
	tally := engine.TallyResponses(responses)
	result := engine.BaseResult("rules", cfg, tally, durationSeconds)

	byIndex := make(map[int]engine.Response, len(responses))
	for _, resp := range responses {
		byIndex[resp.Index] = resp
	}
	discovered := 0
	for block := 0; block < s.cfg.Blocks; block++ {
		end := (block + 1) * s.cfg.BlockTrials
		mastered := true
		for i := end - ruleDiscoveryWindow; i < end; i++ {
			resp, ok := byIndex[i]
			if !ok || !resp.Correct {
				mastered = false
				break
			}
		}
		if mastered {
			discovered++
		}
	}
	result.RulesDiscovered = engine.Int(discovered)
	return engine.AddBonus(result, ruleDiscoveryBonus*float64(discovered))
}

func (s *rulesSession) Prompt() (Prompt, bool) {
	prompt, trial, ok := s.promptHeader()
	if !ok {
		return Prompt{}, false
	}
	item := trial.Stimulus
	prompt.Text = fmt.Sprintf("%s %s %s", item.Size, item.Color, item.Shape)
	prompt.Detail = "Does this item follow the hidden rule?"
	prompt.Options = []Option{{Key: "y", Label: "yes"}, {Key: "n", Label: "no"}}
	return prompt, true
}

func (s *rulesSession) Respond(input string) (Feedback, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return s.respond(true, true)
	case "n", "no":
		return s.respond(false, true)
	default:
		return Feedback{}, false
	}
}

func clampAttrs(attrs int) int {
	if attrs < 1 {
		return 1
	}
	if attrs > 3 {
		return 3
	}
	return attrs
}

func init() {
	register(Definition{
		Name:    "rules",
		Title:   "Rule Discovery",
		Summary: "Classify items to uncover the hidden attribute rule.",
		New: func(level int, clock engine.Clock, rng *rand.Rand) Session {
			return NewRules(RulesConfigForLevel(level), clock, rng)
		},
	})
}

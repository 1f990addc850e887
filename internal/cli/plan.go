package cli

import (
	"math/rand"

	"mentis/internal/config"
	"mentis/internal/task"
)

// plannedSession is one configured session to play.
type plannedSession struct {
	def   task.Definition
	level int
}

// selectTaskPlans resolves CLI task ids against the config.
func selectTaskPlans(env *environment, ids []string) ([]plannedSession, error) {
	selected, err := config.SelectTasks(&env.cfg, ids)
	if err != nil {
		return nil, err
	}
	plans := make([]plannedSession, 0, len(selected))
	for _, plan := range selected {
		plans = append(plans, plannedSession{def: plan.Def, level: plan.Level})
	}
	return plans, nil
}

// newSeededRand builds the per-session random source.
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

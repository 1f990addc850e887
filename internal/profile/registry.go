package profile

import (
	"sort"
	"sync"
	"time"

	"mentis/internal/engine"
)

// TaskState tracks the adaptive difficulty of one task for the player.
type TaskState struct {
	Task         string    `json:"task"`
	Level        int       `json:"level"`
	Sessions     int       `json:"sessions"`
	LastAccuracy float64   `json:"last_accuracy"`
	BestScore    float64   `json:"best_score"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Registry stores per-task difficulty states.
type Registry struct {
	mu     sync.RWMutex
	states map[string]TaskState
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{states: map[string]TaskState{}}
}

// Get returns the state for a task, if present.
func (r *Registry) Get(task string) (TaskState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[task]
	return state, ok
}

// Level returns the stored level for a task, or the fallback when the
// task has never been played.
func (r *Registry) Level(task string, fallback int) int {
	if state, ok := r.Get(task); ok {
		return state.Level
	}
	return engine.ClampLevel(fallback)
}

// Put inserts or replaces a task state.
func (r *Registry) Put(state TaskState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.Task] = state
}

// List returns all task states sorted by task name.
func (r *Registry) List() []TaskState {
	r.mu.RLock()
	snapshot := make([]TaskState, 0, len(r.states))
	for _, state := range r.states {
		snapshot = append(snapshot, state)
	}
	r.mu.RUnlock()
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].Task < snapshot[j].Task
	})
	return snapshot
}

// Record folds a completed session into the task's state and returns the
// updated state, with the level adjusted by the session's accuracy.
func (r *Registry) Record(result engine.Result, now time.Time) TaskState {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.states[result.Task]
	next := nextState(prev, ok, result, now)
	r.states[result.Task] = next
	return next
}

// nextState computes the resulting state for a session result without
// mutating. High accuracy raises the level, low accuracy lowers it.
func nextState(prev TaskState, ok bool, result engine.Result, now time.Time) TaskState {
	level := result.Level
	if ok {
		level = prev.Level
	}
	next := TaskState{
		Task:         result.Task,
		Level:        engine.Adjust(level, result.Accuracy),
		Sessions:     prev.Sessions + 1,
		LastAccuracy: result.Accuracy,
		BestScore:    prev.BestScore,
		UpdatedAt:    now,
	}
	if result.Score > next.BestScore {
		next.BestScore = result.Score
	}
	return next
}

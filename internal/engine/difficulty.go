package engine

// Difficulty scalar bounds. Each task maps the scalar onto concrete
// parameters through a monotone table: raising the level by one worsens at
// least one dimension (more trials, shorter window, higher complexity) and
// never eases every dimension.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Accuracy thresholds for the adaptation rule.
const (
	raiseAccuracy = 0.8
	lowerAccuracy = 0.5
)

// ClampLevel pulls a difficulty scalar into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return clampInt(level, MinLevel, MaxLevel)
}

// Adjust maps a completed-session accuracy to the next difficulty level.
// Accuracy above 0.8 raises the level, below 0.5 lowers it, anything in
// between leaves it unchanged. The result is clamped, so a session at the
// ceiling or floor keeps its level.
func Adjust(level int, accuracy float64) int {
	level = ClampLevel(level)
	switch {
	case accuracy > raiseAccuracy:
		return ClampLevel(level + 1)
	case accuracy < lowerAccuracy:
		return ClampLevel(level - 1)
	default:
		return level
	}
}

// ScaleInt interpolates an integer parameter across the difficulty range:
// level 1 maps to lo, level 10 to hi. Monotone in the level for lo <= hi
// (growing counts) and for lo >= hi (shrinking windows).
func ScaleInt(level, lo, hi int) int {
	level = ClampLevel(level)
	span := hi - lo
	step := float64(span) * float64(level-MinLevel) / float64(MaxLevel-MinLevel)
	return lo + RoundHalfUp(step)
}

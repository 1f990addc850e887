package engine

// Outcome is the classification of a single response. Go/no-go style tasks
// use the four signal-detection outcomes; forced-choice tasks use the two
// binary outcomes. Exactly one outcome is assigned per response.
type Outcome string

const (
	OutcomeHit              Outcome = "hit"
	OutcomeMiss             Outcome = "miss"
	OutcomeFalseAlarm       Outcome = "false_alarm"
	OutcomeCorrectRejection Outcome = "correct_rejection"
	OutcomeCorrect          Outcome = "correct"
	OutcomeIncorrect        Outcome = "incorrect"
)

// IsCorrect reports whether the outcome counts toward the correct tally.
func (o Outcome) IsCorrect() bool {
	switch o {
	case OutcomeHit, OutcomeCorrectRejection, OutcomeCorrect:
		return true
	default:
		return false
	}
}

// Detect maps (isTarget, responded) onto the four signal-detection
// outcomes. It is a pure function covering all four combinations.
func Detect(isTarget, responded bool) Outcome {
	switch {
	case responded && isTarget:
		return OutcomeHit
	case !responded && isTarget:
		return OutcomeMiss
	case responded && !isTarget:
		return OutcomeFalseAlarm
	default:
		return OutcomeCorrectRejection
	}
}

// Judge maps a boolean correctness onto the binary outcomes.
func Judge(correct bool) Outcome {
	if correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

package engine

import "math"

// Scoring weights shared by every task. The base score rewards correct
// trials scaled by difficulty, the speed bonus rewards fast average
// reactions and never goes negative.
const (
	basePointsPerCorrect = 10.0
	speedBonusMax        = 50.0
	speedBonusFloorMs    = 300.0
	speedBonusCeilMs     = 1800.0
)

// DifficultyMultiplier scales the base score by the session level.
func DifficultyMultiplier(level int) float64 {
	return 1 + 0.25*float64(ClampLevel(level)-MinLevel)
}

// BaseScore returns the difficulty-scaled points for correct trials.
func BaseScore(correctCount, level int) float64 {
	if correctCount < 0 {
		correctCount = 0
	}
	return float64(correctCount) * basePointsPerCorrect * DifficultyMultiplier(level)
}

// SpeedBonus maps an average reaction time to a bonus in
// [0, speedBonusMax], monotonically decreasing in the reaction time.
// Averages at or below the floor earn the full bonus; averages at or
// beyond the ceiling earn nothing. A zero average means no reactions were
// measured and earns nothing.
func SpeedBonus(avgReactionMs float64) float64 {
	if avgReactionMs <= 0 {
		return 0
	}
	if avgReactionMs <= speedBonusFloorMs {
		return speedBonusMax
	}
	if avgReactionMs >= speedBonusCeilMs {
		return 0
	}
	frac := (speedBonusCeilMs - avgReactionMs) / (speedBonusCeilMs - speedBonusFloorMs)
	return speedBonusMax * frac
}

// Accuracy returns correct/total, or 0 when there are no responses.
func Accuracy(correctCount, totalResponses int) float64 {
	if totalResponses <= 0 {
		return 0
	}
	return Round2(float64(correctCount) / float64(totalResponses))
}

// Rate returns numerator/denominator rounded to two decimals, or 0 when
// the denominator is zero.
func Rate(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 0
	}
	return Round2(float64(numerator) / float64(denominator))
}

// Round2 rounds to two decimal places for display stability.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Tally aggregates a response log into the counts every scorer needs.
type Tally struct {
	Responses         int
	Correct           int
	Errors            int
	Hits              int
	Misses            int
	FalseAlarms       int
	CorrectRejections int
	reactionSum       float64
	reactionSq        float64
	reactionN         int
}

// TallyResponses folds a response log into a Tally.
func TallyResponses(responses []Response) Tally {
	var t Tally
	for _, r := range responses {
		t.Responses++
		if r.Correct {
			t.Correct++
		} else {
			t.Errors++
		}
		switch r.Outcome {
		case OutcomeHit:
			t.Hits++
		case OutcomeMiss:
			t.Misses++
		case OutcomeFalseAlarm:
			t.FalseAlarms++
		case OutcomeCorrectRejection:
			t.CorrectRejections++
		}
		if r.ReactionMs != nil {
			t.reactionSum += *r.ReactionMs
			t.reactionSq += *r.ReactionMs * *r.ReactionMs
			t.reactionN++
		}
	}
	return t
}

// HitRate returns hits/(hits+misses), 0 when the session had no targets.
func (t Tally) HitRate() float64 {
	return Rate(t.Hits, t.Hits+t.Misses)
}

// FalseAlarmRate returns falseAlarms/(falseAlarms+correctRejections),
// 0 when the session had no non-targets.
func (t Tally) FalseAlarmRate() float64 {
	return Rate(t.FalseAlarms, t.FalseAlarms+t.CorrectRejections)
}

// AvgReactionMs returns the mean measured reaction time, 0 when no
// responses carried a reaction time.
func (t Tally) AvgReactionMs() float64 {
	if t.reactionN == 0 {
		return 0
	}
	return t.reactionSum / float64(t.reactionN)
}

// ReactionSDMs returns the population standard deviation of the measured
// reaction times, 0 for fewer than two samples.
func (t Tally) ReactionSDMs() float64 {
	if t.reactionN < 2 {
		return 0
	}
	mean := t.AvgReactionMs()
	variance := t.reactionSq/float64(t.reactionN) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// BaseResult assembles the fields every task result shares. Task scorers
// add their bonus and secondary metrics on top.
func BaseResult(task string, cfg Config, t Tally, durationSeconds float64) Result {
	avg := t.AvgReactionMs()
	base := BaseScore(t.Correct, cfg.Level)
	speed := SpeedBonus(avg)
	return Result{
		Task:            task,
		Level:           ClampLevel(cfg.Level),
		Score:           Round2(base + speed),
		Accuracy:        Accuracy(t.Correct, t.Responses),
		DurationSeconds: Round2(durationSeconds),
		TrialCount:      cfg.Trials,
		CorrectCount:    t.Correct,
		ErrorCount:      t.Errors,
		AvgReactionMs:   Round2(avg),
		ReactionSDMs:    Round2(t.ReactionSDMs()),
		Breakdown: ScoreBreakdown{
			Base:  Round2(base),
			Speed: Round2(speed),
		},
	}
}

// AddBonus folds a task-specific bonus into the result's score.
func AddBonus(result Result, bonus float64) Result {
	result.Breakdown.Bonus = Round2(bonus)
	result.Score = Round2(result.Score + bonus)
	return result
}

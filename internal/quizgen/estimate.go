package quizgen

import (
	"math"

	"github.com/SatvikPraveen/TSVerseHub-sub002/internal/question"
)

// baseTimeByType is the expected minutes a learner spends on one question
// of each kind, before adjusting for difficulty.
var baseTimeByType = map[question.Type]float64{
	question.TypeMultipleChoice: 1.5,
	question.TypeTrueFalse:      1.0,
	question.TypeShortAnswer:    2.0,
	question.TypeFillInBlank:    2.5,
	question.TypeMatching:       3.0,
	question.TypeOrdering:       2.5,
	question.TypeCodeCompletion: 5.0,
}

// defaultBaseTime is used for question types missing from the table.
const defaultBaseTime = 2.0

// difficultyMultiplier scales the base time per difficulty level.
var difficultyMultiplier = map[question.Difficulty]float64{
	question.DifficultyBeginner:     1.0,
	question.DifficultyIntermediate: 1.2,
	question.DifficultyAdvanced:     1.5,
	question.DifficultyExpert:       2.0,
}

// Overall-difficulty bucket thresholds over the ordinal average
// (beginner=1, intermediate=2, advanced=3, expert=4).
const (
	beginnerThreshold     = 1.3
	intermediateThreshold = 2.3
)

// estimateTime returns the estimated completion time in whole minutes:
// the ceiling of the per-question base times scaled by difficulty.
func estimateTime(questions []question.Question) int {
	var total float64
	for _, q := range questions {
		base, ok := baseTimeByType[q.Type]
		if !ok {
			base = defaultBaseTime
		}
		mult, ok := difficultyMultiplier[q.Difficulty]
		if !ok {
			mult = 1.0
		}
		total += base * mult
	}
	return int(math.Ceil(total))
}

// overallDifficulty buckets the average difficulty ordinal of the
// selection. The thresholds are fixed constants, not configuration.
func overallDifficulty(questions []question.Question) question.Difficulty {
	if len(questions) == 0 {
		return question.DifficultyBeginner
	}
	sum := 0
	for _, q := range questions {
		sum += q.Difficulty.Ordinal()
	}
	avg := float64(sum) / float64(len(questions))
	switch {
	case avg <= beginnerThreshold:
		return question.DifficultyBeginner
	case avg <= intermediateThreshold:
		return question.DifficultyIntermediate
	default:
		return question.DifficultyAdvanced
	}
}

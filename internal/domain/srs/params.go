package srs

import "github.com/salmansheikhutk/readarabicbackend/internal/domain"

// Params defines all configurable parameters for the review scheduling algorithm.
type Params struct {
	// MinEaseFactor is the floor the ease factor is clamped to after every adjustment.
	MinEaseFactor float64

	// CorrectEaseBonus is added to the ease factor on a correct answer.
	CorrectEaseBonus float64

	// IncorrectEasePenalty is subtracted from the ease factor on an incorrect answer.
	IncorrectEasePenalty float64

	// BaseIntervals are the fixed interval ladder (in days) for the first
	// correct answers of a streak, indexed by the streak length before the answer.
	BaseIntervals [3]int

	// GrowthBaseDays is the base of the exponential interval formula used
	// once the streak outgrows the fixed ladder.
	GrowthBaseDays float64
}

// NewDefaultParams creates a new Params instance with the standard policy:
// ease moves +0.1 / -0.2 clamped at 1.3, the interval ladder is 1, 3, 7
// days, and longer streaks grow as 7 * ease^(streak-2).
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:        domain.MinEaseFactor,
		CorrectEaseBonus:     0.1,
		IncorrectEasePenalty: 0.2,
		BaseIntervals:        [3]int{1, 3, 7},
		GrowthBaseDays:       7,
	}
}

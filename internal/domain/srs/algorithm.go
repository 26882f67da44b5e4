package srs

import (
	"math"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
)

// effectiveEaseFactor normalizes the stored ease factor before scheduling.
// Items saved before review tracking existed carry a zero value, which is
// treated as the 2.5 default.
func effectiveEaseFactor(stored float64) float64 {
	if stored <= 0 {
		return domain.DefaultEaseFactor
	}
	return stored
}

// nextEaseFactor computes the updated ease factor for a review outcome.
//
// The ease factor represents the item's difficulty rating: higher means the
// word is easier and intervals grow faster. Correct answers nudge it up,
// incorrect answers push it down harder, and the result is always clamped
// to params.MinEaseFactor so intervals keep growing even for hard words.
func nextEaseFactor(current float64, correct bool, params *Params) float64 {
	var ef float64
	if correct {
		ef = current + params.CorrectEaseBonus
	} else {
		ef = current - params.IncorrectEasePenalty
	}

	if ef < params.MinEaseFactor {
		ef = params.MinEaseFactor
	}

	return ef
}

// intervalDays computes how many days until the next review.
//
// An incorrect answer always resets the interval to one day. Correct answers
// walk the fixed ladder for the first three answers of a streak, then grow
// exponentially: floor(GrowthBaseDays * ease^(streak-2)).
//
// The streak is the value before this answer's own increment, and the ease
// factor is the value the item entered the review with, before this answer's
// own adjustment. This exact ordering is load-bearing: a fresh item answered
// correctly four times in a row yields the sequence 1, 3, 7, 19.
func intervalDays(streak int, easeFactor float64, correct bool, params *Params) int {
	if !correct {
		return 1
	}

	if streak < len(params.BaseIntervals) {
		return params.BaseIntervals[streak]
	}

	days := int(math.Floor(params.GrowthBaseDays * math.Pow(easeFactor, float64(streak-2))))
	if days < 1 {
		days = 1
	}
	return days
}

// nextStats folds a review outcome into the item's review statistics.
// The consecutive-correct streak grows on success and resets to zero on
// failure; the cumulative counters are monotonic.
func nextStats(stats domain.ReviewStats, correct bool, newEaseFactor float64) domain.ReviewStats {
	updated := stats
	updated.EaseFactor = newEaseFactor

	if correct {
		updated.ReviewCount = stats.ReviewCount + 1
		updated.CorrectCount = stats.CorrectCount + 1
	} else {
		updated.ReviewCount = 0
		updated.IncorrectCount = stats.IncorrectCount + 1
	}

	return updated
}

// Package srs implements the spaced-repetition review scheduler.
//
// The scheduler is a pure function of an item's current review statistics
// and a pass/fail outcome. It performs no I/O; persisting the result is the
// caller's responsibility.
package srs

import (
	"time"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
)

// Result is the outcome of scheduling a single review.
type Result struct {
	// Stats are the updated review statistics to persist.
	Stats domain.ReviewStats

	// IntervalDays is the computed gap until the next review. Always >= 1.
	IntervalDays int

	// NextReviewAt is when the item is next due: now + IntervalDays days.
	NextReviewAt time.Time
}

// Service defines the interface for review scheduling operations.
type Service interface {
	// Schedule computes updated review statistics and the next due time for
	// a pass/fail review outcome at the given instant. It is deterministic
	// given its inputs and never mutates its arguments.
	Schedule(stats domain.ReviewStats, correct bool, now time.Time) Result
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduler with the default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a scheduler with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Schedule implements the Service interface.
func (s *defaultService) Schedule(stats domain.ReviewStats, correct bool, now time.Time) Result {
	// The interval formula reads the ease factor the item entered the review
	// with; the ease adjustment for this outcome applies afterwards.
	entering := effectiveEaseFactor(stats.EaseFactor)
	days := intervalDays(stats.ReviewCount, entering, correct, s.params)

	normalized := stats
	normalized.EaseFactor = entering
	updated := nextStats(normalized, correct, nextEaseFactor(entering, correct, s.params))

	return Result{
		Stats:        updated,
		IntervalDays: days,
		NextReviewAt: now.AddDate(0, 0, days),
	}
}

// Package review implements review submission and due-item listing on top of
// the spaced-repetition scheduler.
package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain/srs"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/logger"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// SubmitResult is the outcome of a recorded review.
type SubmitResult struct {
	// Item is the vocabulary item after the review was applied.
	Item *domain.VocabularyItem

	// IntervalDays is the gap until the item is next due.
	IntervalDays int
}

// Service defines review operations over a user's vocabulary.
type Service interface {
	// SubmitReview records a pass/fail outcome for the given item, updates
	// its review statistics atomically and returns the rescheduled item.
	// Returns ErrItemNotFound when the item does not exist and ErrItemNotOwned
	// when it belongs to another user.
	SubmitReview(ctx context.Context, userID, itemID uuid.UUID, correct bool) (*SubmitResult, error)

	// ListDue returns the user's items due for review now, most overdue
	// first. A non-nil bookID restricts the list to one book. An empty list
	// is a normal result, not an error.
	ListDue(ctx context.Context, userID uuid.UUID, bookID *int64) ([]*domain.VocabularyItem, error)
}

type serviceImpl struct {
	db              *sql.DB
	vocabularyStore store.VocabularyStore
	scheduler       srs.Service
	timeFunc        func() time.Time // Injectable for testing
}

var _ Service = (*serviceImpl)(nil)

// NewService creates a review service backed by the given scheduler.
func NewService(db *sql.DB, vocabularyStore store.VocabularyStore, scheduler srs.Service) Service {
	return &serviceImpl{
		db:              db,
		vocabularyStore: vocabularyStore,
		scheduler:       scheduler,
		timeFunc:        time.Now,
	}
}

// SubmitReview implements the Service interface.
func (s *serviceImpl) SubmitReview(
	ctx context.Context,
	userID, itemID uuid.UUID,
	correct bool,
) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil || itemID == uuid.Nil {
		return nil, fmt.Errorf("%w: user and item IDs cannot be empty", domain.ErrValidation)
	}

	now := s.timeFunc().UTC()

	var result *SubmitResult
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var txErr error
		result, txErr = s.applyReview(ctx, s.vocabularyStore.WithTx(tx), userID, itemID, correct, now)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	log.Debug("recorded review",
		"item_id", itemID,
		"correct", correct,
		"interval_days", result.IntervalDays,
		"next_review_at", result.Item.NextReviewAt)

	return result, nil
}

// applyReview loads the item under a row lock, checks ownership, schedules
// the next review and persists the updated state. Runs inside the submit
// transaction so concurrent reviews of the same item serialize instead of
// both applying against the same starting state.
func (s *serviceImpl) applyReview(
	ctx context.Context,
	vocabStore store.VocabularyStore,
	userID, itemID uuid.UUID,
	correct bool,
	now time.Time,
) (*SubmitResult, error) {
	item, err := vocabStore.GetForUpdate(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrVocabularyNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load vocabulary item: %w", err)
	}

	if item.UserID != userID {
		logger.FromContext(ctx).Warn("review attempted on another user's item",
			"item_id", itemID,
			"user_id", userID)
		return nil, ErrItemNotOwned
	}

	scheduled := s.scheduler.Schedule(item.Stats(), correct, now)
	item.ApplyStats(scheduled.Stats, scheduled.NextReviewAt)

	if err := vocabStore.UpdateReviewState(ctx, item); err != nil {
		if errors.Is(err, store.ErrVocabularyNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to persist review state: %w", err)
	}

	return &SubmitResult{Item: item, IntervalDays: scheduled.IntervalDays}, nil
}

// ListDue implements the Service interface.
func (s *serviceImpl) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	bookID *int64,
) ([]*domain.VocabularyItem, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user ID cannot be empty", domain.ErrValidation)
	}

	items, err := s.vocabularyStore.ListDue(ctx, userID, bookID, s.timeFunc().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list due vocabulary items: %w", err)
	}

	// Callers serialize this directly; an empty day is [] rather than null.
	if items == nil {
		items = []*domain.VocabularyItem{}
	}
	return items, nil
}

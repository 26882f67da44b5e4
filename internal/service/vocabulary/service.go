// Package vocabulary implements saving words to a user's personal list,
// including the free-tier admission check.
package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/logger"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// AdmissionOutcome tags why a save was allowed or refused. The tag is part
// of the result so callers never have to re-derive the reason from state.
type AdmissionOutcome string

const (
	// AdmissionPremium means a qualifying subscription bypassed the cap.
	AdmissionPremium AdmissionOutcome = "premium"

	// AdmissionUnderLimit means the user is below the free-tier cap.
	AdmissionUnderLimit AdmissionOutcome = "under_limit"

	// AdmissionExistingEntry means the word key already exists for the user,
	// so the save is an update and does not consume a new slot.
	AdmissionExistingEntry AdmissionOutcome = "existing_entry"
)

// SaveWordInput carries the caller-supplied fields of a save request.
type SaveWordInput struct {
	Key         domain.WordKey
	Translation string
}

// SaveWordResult is the outcome of a successful save.
type SaveWordResult struct {
	Item    *domain.VocabularyItem
	Outcome AdmissionOutcome
	// Created is true when the save inserted a new row rather than
	// updating an existing one.
	Created bool
}

// Service defines the vocabulary management operations.
type Service interface {
	// SaveWord stores a word in the user's vocabulary list, enforcing the
	// free-tier cap for users without a qualifying subscription. Re-saving
	// an existing word key updates its translation without consuming a slot.
	// Returns a LimitError wrapping ErrFreeLimitReached when the cap denies
	// the save.
	SaveWord(ctx context.Context, userID uuid.UUID, input SaveWordInput) (*SaveWordResult, error)
}

type serviceImpl struct {
	db                *sql.DB
	vocabularyStore   store.VocabularyStore
	subscriptionStore store.SubscriptionStore
	freeTierLimit     int
	timeFunc          func() time.Time // Injectable for testing
}

var _ Service = (*serviceImpl)(nil)

// NewService creates a vocabulary service enforcing the given free-tier cap.
func NewService(
	db *sql.DB,
	vocabularyStore store.VocabularyStore,
	subscriptionStore store.SubscriptionStore,
	freeTierLimit int,
) Service {
	return &serviceImpl{
		db:                db,
		vocabularyStore:   vocabularyStore,
		subscriptionStore: subscriptionStore,
		freeTierLimit:     freeTierLimit,
		timeFunc:          time.Now,
	}
}

// SaveWord implements the Service interface.
func (s *serviceImpl) SaveWord(
	ctx context.Context,
	userID uuid.UUID,
	input SaveWordInput,
) (*SaveWordResult, error) {
	log := logger.FromContext(ctx)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user ID cannot be empty", domain.ErrValidation)
	}
	if err := input.Key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if input.Translation == "" {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, domain.ErrVocabularyTranslationEmpty)
	}

	now := s.timeFunc().UTC()

	var result *SaveWordResult
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		vocabStore := s.vocabularyStore.WithTx(tx)
		subStore := s.subscriptionStore.WithTx(tx)

		outcome, err := s.admit(ctx, userID, input.Key, now, vocabStore, subStore)
		if err != nil {
			return err
		}

		item, err := domain.NewVocabularyItem(userID, input.Key, input.Translation)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		// The composite unique index turns a concurrent duplicate insert
		// into an update of the same row, so the stored item may carry
		// review state that predates this call.
		stored, err := vocabStore.Upsert(ctx, item)
		if err != nil {
			return fmt.Errorf("failed to save vocabulary item: %w", err)
		}

		result = &SaveWordResult{
			Item:    stored,
			Outcome: outcome,
			Created: outcome != AdmissionExistingEntry,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("saved vocabulary word",
		"user_id", userID,
		"word", input.Key.Word,
		"book_id", input.Key.BookID,
		"outcome", result.Outcome)

	return result, nil
}

// admit decides whether the save may proceed and with which outcome tag.
// Runs inside the save transaction so the count, the existence check and the
// subsequent upsert see a consistent snapshot.
func (s *serviceImpl) admit(
	ctx context.Context,
	userID uuid.UUID,
	key domain.WordKey,
	now time.Time,
	vocabStore store.VocabularyStore,
	subStore store.SubscriptionStore,
) (AdmissionOutcome, error) {
	premium, err := s.hasQualifyingSubscription(ctx, userID, now, subStore)
	if err != nil {
		return "", err
	}

	_, err = vocabStore.FindByKey(ctx, userID, key)
	switch {
	case err == nil:
		// Updates never consume a slot, premium or not.
		return AdmissionExistingEntry, nil
	case errors.Is(err, store.ErrVocabularyNotFound):
		// New entry; fall through to the cap check.
	default:
		return "", fmt.Errorf("failed to look up existing vocabulary entry: %w", err)
	}

	if premium {
		return AdmissionPremium, nil
	}

	count, err := vocabStore.CountByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to count vocabulary entries: %w", err)
	}
	if count >= s.freeTierLimit {
		return "", &LimitError{Limit: s.freeTierLimit, Count: count}
	}

	return AdmissionUnderLimit, nil
}

// hasQualifyingSubscription reports whether the user holds premium access at
// the given instant. A lookup failure is returned as an error, never treated
// as "no subscription", so infrastructure trouble cannot silently demote a
// paying user to the free tier.
func (s *serviceImpl) hasQualifyingSubscription(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	subStore store.SubscriptionStore,
) (bool, error) {
	sub, err := subStore.GetQualifying(ctx, userID, now)
	if err != nil {
		if errors.Is(err, store.ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return sub.Qualifies(now), nil
}

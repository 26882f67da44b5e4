package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
)

// VocabularyStore defines the interface for vocabulary item persistence.
type VocabularyStore interface {
	// GetByID retrieves a vocabulary item by its unique ID.
	// Returns ErrVocabularyNotFound if the item does not exist.
	// NOTE: This method does NOT provide any row locking, so it should not be
	// used when you plan to update the row and need concurrency protection.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// GetForUpdate retrieves a vocabulary item with a row-level lock using
	// SELECT FOR UPDATE. This should be used within a transaction when you
	// plan to update the row and need protection from concurrent modifications.
	// Returns ErrVocabularyNotFound if the item does not exist.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// UpdateReviewState persists the scheduler-owned fields of an item in a
	// single statement: ease factor, streak, cumulative counters and next due
	// time all change together or not at all.
	// Returns ErrVocabularyNotFound if the item does not exist.
	UpdateReviewState(ctx context.Context, item *domain.VocabularyItem) error

	// CountByUser counts the user's distinct vocabulary entries.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// FindByKey looks up the user's entry at exactly the given word key.
	// Returns ErrVocabularyNotFound if no entry exists at that location.
	FindByKey(ctx context.Context, userID uuid.UUID, key domain.WordKey) (*domain.VocabularyItem, error)

	// Upsert inserts the item, or, when a row already exists at the same
	// (user, word key) composite identity, updates only its translation and
	// learned-at timestamp. The composite unique index makes this the
	// correctness backstop for concurrent saves: duplicate inserts at the
	// identical key collapse to one row.
	// Returns the stored row.
	Upsert(ctx context.Context, item *domain.VocabularyItem) (*domain.VocabularyItem, error)

	// ListDue returns the user's items with next_review_at at or before now,
	// most overdue first. A non-nil bookID restricts the list to one book.
	ListDue(ctx context.Context, userID uuid.UUID, bookID *int64, now time.Time) ([]*domain.VocabularyItem, error)

	// WithTx returns a new VocabularyStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) VocabularyStore
}

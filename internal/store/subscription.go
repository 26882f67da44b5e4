package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
)

// SubscriptionStore defines the interface for subscription persistence.
type SubscriptionStore interface {
	// GetQualifying retrieves the user's qualifying subscription at the given
	// instant: a record with status active or cancelled whose expiry is still
	// in the future.
	// Returns ErrSubscriptionNotFound if no such record exists. Lookup
	// failures are returned distinctly and must never be collapsed into
	// "no subscription".
	GetQualifying(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Subscription, error)

	// Create saves a new subscription record.
	Create(ctx context.Context, sub *domain.Subscription) error

	// UpdateStatus sets the status of an existing subscription.
	// Returns ErrSubscriptionNotFound if the subscription does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubscriptionStatus) error

	// WithTx returns a new SubscriptionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SubscriptionStore
}

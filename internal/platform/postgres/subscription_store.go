package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/logger"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// PostgresSubscriptionStore implements the store.SubscriptionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSubscriptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubscriptionStore creates a new PostgreSQL implementation of the
// SubscriptionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresSubscriptionStore(db store.DBTX, logger *slog.Logger) *PostgresSubscriptionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubscriptionStore{
		db:     db,
		logger: logger.With(slog.String("component", "subscription_store")),
	}
}

// Ensure PostgresSubscriptionStore implements store.SubscriptionStore interface
var _ store.SubscriptionStore = (*PostgresSubscriptionStore)(nil)

// WithTx implements store.SubscriptionStore.WithTx
func (s *PostgresSubscriptionStore) WithTx(tx *sql.Tx) store.SubscriptionStore {
	return &PostgresSubscriptionStore{
		db:     tx,
		logger: s.logger,
	}
}

// GetQualifying implements store.SubscriptionStore.GetQualifying
// Returns store.ErrSubscriptionNotFound if the user has no active or
// cancelled-but-unexpired subscription.
func (s *PostgresSubscriptionStore) GetQualifying(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*domain.Subscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, status, expires_at, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
			AND status IN ($2, $3)
			AND expires_at > $4
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var sub domain.Subscription
	var status string

	err := s.db.QueryRowContext(
		ctx,
		query,
		userID,
		domain.SubscriptionStatusActive,
		domain.SubscriptionStatusCancelled,
		now,
	).Scan(
		&sub.ID,
		&sub.UserID,
		&status,
		&sub.ExpiresAt,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSubscriptionNotFound
		}
		log.Error("failed to get qualifying subscription",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	sub.Status = domain.SubscriptionStatus(status)
	return &sub, nil
}

// Create implements store.SubscriptionStore.Create
func (s *PostgresSubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := sub.Validate(); err != nil {
		log.Warn("subscription validation failed during create",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()))
		return err
	}

	query := `
		INSERT INTO subscriptions (id, user_id, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.UserID,
		sub.Status,
		sub.ExpiresAt,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()),
			slog.String("user_id", sub.UserID.String()))
		return MapError(err)
	}

	log.Info("subscription created",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("user_id", sub.UserID.String()),
		slog.String("status", string(sub.Status)))
	return nil
}

// UpdateStatus implements store.SubscriptionStore.UpdateStatus
// Returns store.ErrSubscriptionNotFound if the subscription does not exist.
func (s *PostgresSubscriptionStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.SubscriptionStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE subscriptions
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update subscription status",
			slog.String("error", err.Error()),
			slog.String("subscription_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "subscription"); err != nil {
		return err
	}

	log.Info("subscription status updated",
		slog.String("subscription_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

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

// vocabularyColumns is the column list shared by all item queries.
const vocabularyColumns = `id, user_id, word, translation, book_id, page_number, volume,
	word_position, ease_factor, review_count, correct_count, incorrect_count,
	next_review_at, learned_at, created_at`

// PostgresVocabularyStore implements the store.VocabularyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabularyStore creates a new PostgreSQL implementation of the
// VocabularyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresVocabularyStore(db store.DBTX, logger *slog.Logger) *PostgresVocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVocabularyStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure PostgresVocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*PostgresVocabularyStore)(nil)

// WithTx implements store.VocabularyStore.WithTx
func (s *PostgresVocabularyStore) WithTx(tx *sql.Tx) store.VocabularyStore {
	return &PostgresVocabularyStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanItem scans one vocabulary item row in vocabularyColumns order.
func scanItem(row interface{ Scan(dest ...any) error }) (*domain.VocabularyItem, error) {
	var item domain.VocabularyItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Word,
		&item.Translation,
		&item.BookID,
		&item.PageNumber,
		&item.Volume,
		&item.WordPosition,
		&item.EaseFactor,
		&item.ReviewCount,
		&item.CorrectCount,
		&item.IncorrectCount,
		&item.NextReviewAt,
		&item.LearnedAt,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByID implements store.VocabularyStore.GetByID
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *PostgresVocabularyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE id = $1
	`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary item not found", slog.String("item_id", id.String()))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary item by ID",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, MapError(err)
	}

	return item, nil
}

// GetForUpdate implements store.VocabularyStore.GetForUpdate
// It locks the row with SELECT FOR UPDATE; callers must be inside a transaction.
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *PostgresVocabularyStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE id = $1
		FOR UPDATE
	`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary item not found for update", slog.String("item_id", id.String()))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to lock vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, MapError(err)
	}

	return item, nil
}

// UpdateReviewState implements store.VocabularyStore.UpdateReviewState
// All scheduler-owned fields are written in one statement so a failed update
// never leaves the due date advanced with stale counters or vice versa.
// Returns store.ErrVocabularyNotFound if the item does not exist.
func (s *PostgresVocabularyStore) UpdateReviewState(ctx context.Context, item *domain.VocabularyItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during review update",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return err
	}

	query := `
		UPDATE vocabulary_items
		SET ease_factor = $1,
			review_count = $2,
			correct_count = $3,
			incorrect_count = $4,
			next_review_at = $5
		WHERE id = $6 AND user_id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		item.EaseFactor,
		item.ReviewCount,
		item.CorrectCount,
		item.IncorrectCount,
		item.NextReviewAt,
		item.ID,
		item.UserID,
	)
	if err != nil {
		log.Error("failed to update vocabulary review state",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "vocabulary item"); err != nil {
		return err
	}

	log.Debug("vocabulary review state updated",
		slog.String("item_id", item.ID.String()),
		slog.Float64("ease_factor", item.EaseFactor),
		slog.Int("review_count", item.ReviewCount),
		slog.Time("next_review_at", item.NextReviewAt))
	return nil
}

// CountByUser implements store.VocabularyStore.CountByUser
func (s *PostgresVocabularyStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM vocabulary_items
		WHERE user_id = $1
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Error("failed to count vocabulary items",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, MapError(err)
	}

	return count, nil
}

// FindByKey implements store.VocabularyStore.FindByKey
// Returns store.ErrVocabularyNotFound if no entry exists at the given location.
func (s *PostgresVocabularyStore) FindByKey(
	ctx context.Context,
	userID uuid.UUID,
	key domain.WordKey,
) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE user_id = $1
			AND word = $2
			AND book_id = $3
			AND page_number = $4
			AND volume = $5
			AND word_position = $6
	`

	item, err := scanItem(s.db.QueryRowContext(
		ctx, query, userID, key.Word, key.BookID, key.PageNumber, key.Volume, key.WordPosition,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to find vocabulary item by key",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("word", key.Word))
		return nil, MapError(err)
	}

	return item, nil
}

// Upsert implements store.VocabularyStore.Upsert
// The composite unique index on (user_id, word, book_id, page_number, volume,
// word_position) guarantees concurrent saves at the identical key collapse to
// one row; the conflict branch touches only translation and learned_at.
func (s *PostgresVocabularyStore) Upsert(
	ctx context.Context,
	item *domain.VocabularyItem,
) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", item.UserID.String()))
		return nil, err
	}

	query := `
		INSERT INTO vocabulary_items (` + vocabularyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (user_id, word, book_id, page_number, volume, word_position)
		DO UPDATE SET translation = EXCLUDED.translation, learned_at = EXCLUDED.learned_at
		RETURNING ` + vocabularyColumns + `
	`

	stored, err := scanItem(s.db.QueryRowContext(
		ctx,
		query,
		item.ID,
		item.UserID,
		item.Word,
		item.Translation,
		item.BookID,
		item.PageNumber,
		item.Volume,
		item.WordPosition,
		item.EaseFactor,
		item.ReviewCount,
		item.CorrectCount,
		item.IncorrectCount,
		item.NextReviewAt,
		item.LearnedAt,
		item.CreatedAt,
	))
	if err != nil {
		log.Error("failed to upsert vocabulary item",
			slog.String("error", err.Error()),
			slog.String("user_id", item.UserID.String()),
			slog.String("word", item.Word))
		return nil, MapError(err)
	}

	log.Info("vocabulary item saved",
		slog.String("item_id", stored.ID.String()),
		slog.String("user_id", stored.UserID.String()),
		slog.String("word", stored.Word))
	return stored, nil
}

// ListDue implements store.VocabularyStore.ListDue
// Items are ordered ascending by next_review_at, most overdue first.
func (s *PostgresVocabularyStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	bookID *int64,
	now time.Time,
) ([]*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vocabularyColumns + `
		FROM vocabulary_items
		WHERE user_id = $1 AND next_review_at <= $2
	`
	args := []any{userID, now}

	if bookID != nil {
		query += ` AND book_id = $3`
		args = append(args, *bookID)
	}

	query += ` ORDER BY next_review_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list due vocabulary items",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	items := make([]*domain.VocabularyItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Error("failed to scan vocabulary item row",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, MapError(err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

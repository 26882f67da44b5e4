package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Vocabulary-specific validation errors
var (
	// ErrVocabularyIDEmpty is returned when a vocabulary item ID is empty or nil.
	ErrVocabularyIDEmpty = errors.New("vocabulary item ID cannot be empty")

	// ErrVocabularyUserIDEmpty is returned when a vocabulary item's user ID is empty or nil.
	ErrVocabularyUserIDEmpty = errors.New("vocabulary item user ID cannot be empty")

	// ErrVocabularyWordEmpty is returned when a vocabulary item's word is empty.
	ErrVocabularyWordEmpty = errors.New("vocabulary word cannot be empty")

	// ErrVocabularyTranslationEmpty is returned when a vocabulary item's translation is empty.
	ErrVocabularyTranslationEmpty = errors.New("vocabulary translation cannot be empty")

	// ErrInvalidEaseFactor is returned when the ease factor drops below the algorithm floor.
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")

	// ErrNegativeReviewCount is returned when any review counter is negative.
	ErrNegativeReviewCount = errors.New("review counters cannot be negative")
)

// DefaultEaseFactor is the ease factor assigned to newly saved words.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the floor below which an item's ease factor never drops.
const MinEaseFactor = 1.3

// WordKey identifies a saved word by its position in a book. Together with
// the user ID it forms the composite identity of a vocabulary item:
// re-saving the same word at the same location updates the existing row
// instead of creating a new one.
type WordKey struct {
	Word         string `json:"word"`
	BookID       int64  `json:"book_id"`
	PageNumber   int    `json:"page_number"`
	Volume       string `json:"volume"`
	WordPosition int    `json:"word_position"`
}

// Validate checks that the key carries the required word field.
func (k WordKey) Validate() error {
	if k.Word == "" {
		return ErrVocabularyWordEmpty
	}
	return nil
}

// VocabularyItem is one saved word in a user's personal vocabulary list,
// together with its spaced-repetition review state.
type VocabularyItem struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Word           string    `json:"word"`
	Translation    string    `json:"translation"`
	BookID         int64     `json:"book_id"`
	PageNumber     int       `json:"page_number"`
	Volume         string    `json:"volume"`
	WordPosition   int       `json:"word_position"`
	EaseFactor     float64   `json:"ease_factor"`
	ReviewCount    int       `json:"review_count"`    // consecutive-correct streak
	CorrectCount   int       `json:"correct_count"`   // cumulative
	IncorrectCount int       `json:"incorrect_count"` // cumulative
	NextReviewAt   time.Time `json:"next_review_at"`
	LearnedAt      time.Time `json:"learned_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewVocabularyItem creates a vocabulary item for a user with default review
// state. New items are due immediately so the first review can happen right away.
func NewVocabularyItem(userID uuid.UUID, key WordKey, translation string) (*VocabularyItem, error) {
	now := time.Now().UTC()
	item := &VocabularyItem{
		ID:           uuid.New(),
		UserID:       userID,
		Word:         key.Word,
		Translation:  translation,
		BookID:       key.BookID,
		PageNumber:   key.PageNumber,
		Volume:       key.Volume,
		WordPosition: key.WordPosition,
		EaseFactor:   DefaultEaseFactor,
		ReviewCount:  0,
		NextReviewAt: now,
		LearnedAt:    now,
		CreatedAt:    now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Key returns the composite word key portion of the item's identity.
func (i *VocabularyItem) Key() WordKey {
	return WordKey{
		Word:         i.Word,
		BookID:       i.BookID,
		PageNumber:   i.PageNumber,
		Volume:       i.Volume,
		WordPosition: i.WordPosition,
	}
}

// Stats returns the review-state portion of the item consumed by the scheduler.
func (i *VocabularyItem) Stats() ReviewStats {
	return ReviewStats{
		EaseFactor:     i.EaseFactor,
		ReviewCount:    i.ReviewCount,
		CorrectCount:   i.CorrectCount,
		IncorrectCount: i.IncorrectCount,
	}
}

// ApplyStats folds updated review statistics and the next due time back into
// the item. All scheduler-owned fields change together, never individually.
func (i *VocabularyItem) ApplyStats(stats ReviewStats, nextReviewAt time.Time) {
	i.EaseFactor = stats.EaseFactor
	i.ReviewCount = stats.ReviewCount
	i.CorrectCount = stats.CorrectCount
	i.IncorrectCount = stats.IncorrectCount
	i.NextReviewAt = nextReviewAt
}

// Validate checks if the VocabularyItem has valid data.
// Returns an error if any field fails validation.
func (i *VocabularyItem) Validate() error {
	if i.ID == uuid.Nil {
		return ErrVocabularyIDEmpty
	}

	if i.UserID == uuid.Nil {
		return ErrVocabularyUserIDEmpty
	}

	if i.Word == "" {
		return ErrVocabularyWordEmpty
	}

	if i.Translation == "" {
		return ErrVocabularyTranslationEmpty
	}

	if i.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	if i.ReviewCount < 0 || i.CorrectCount < 0 || i.IncorrectCount < 0 {
		return ErrNegativeReviewCount
	}

	return nil
}

// ReviewStats is the mutable review state of a vocabulary item consumed and
// produced by the spaced-repetition scheduler.
type ReviewStats struct {
	EaseFactor     float64 `json:"ease_factor"`
	ReviewCount    int     `json:"review_count"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
)

// MockVocabularyService implements vocabulary.Service for testing.
type MockVocabularyService struct {
	// SaveWordFn allows custom save logic in tests.
	SaveWordFn func(ctx context.Context, userID uuid.UUID, input vocabulary.SaveWordInput) (*vocabulary.SaveWordResult, error)

	// Default values used when SaveWordFn isn't defined
	Result *vocabulary.SaveWordResult
	Err    error
}

var _ vocabulary.Service = (*MockVocabularyService)(nil)

// SaveWord implements the vocabulary.Service interface.
func (m *MockVocabularyService) SaveWord(
	ctx context.Context,
	userID uuid.UUID,
	input vocabulary.SaveWordInput,
) (*vocabulary.SaveWordResult, error) {
	if m.SaveWordFn != nil {
		return m.SaveWordFn(ctx, userID, input)
	}
	return m.Result, m.Err
}

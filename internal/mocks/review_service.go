package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/review"
)

// MockReviewService implements review.Service for testing.
type MockReviewService struct {
	// Function fields for customizable behavior
	SubmitReviewFn func(ctx context.Context, userID, itemID uuid.UUID, correct bool) (*review.SubmitResult, error)
	ListDueFn      func(ctx context.Context, userID uuid.UUID, bookID *int64) ([]*domain.VocabularyItem, error)

	// Default values used when functions aren't explicitly defined
	SubmitResult *review.SubmitResult
	SubmitErr    error
	DueItems     []*domain.VocabularyItem
	ListErr      error
}

var _ review.Service = (*MockReviewService)(nil)

// SubmitReview implements the review.Service interface.
func (m *MockReviewService) SubmitReview(
	ctx context.Context,
	userID, itemID uuid.UUID,
	correct bool,
) (*review.SubmitResult, error) {
	if m.SubmitReviewFn != nil {
		return m.SubmitReviewFn(ctx, userID, itemID, correct)
	}
	return m.SubmitResult, m.SubmitErr
}

// ListDue implements the review.Service interface.
func (m *MockReviewService) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	bookID *int64,
) ([]*domain.VocabularyItem, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, userID, bookID)
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.DueItems == nil {
		return []*domain.VocabularyItem{}, nil
	}
	return m.DueItems, nil
}

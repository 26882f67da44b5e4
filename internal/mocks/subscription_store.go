package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// MockSubscriptionStore implements store.SubscriptionStore for testing.
type MockSubscriptionStore struct {
	// GetQualifyingFn allows custom lookup logic in tests.
	GetQualifyingFn func(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Subscription, error)

	// Default values used when GetQualifyingFn isn't defined
	Subscription *domain.Subscription
	Err          error
}

var _ store.SubscriptionStore = (*MockSubscriptionStore)(nil)

// GetQualifying implements the SubscriptionStore interface.
func (m *MockSubscriptionStore) GetQualifying(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) (*domain.Subscription, error) {
	if m.GetQualifyingFn != nil {
		return m.GetQualifyingFn(ctx, userID, now)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Subscription == nil {
		return nil, store.ErrSubscriptionNotFound
	}
	return m.Subscription, nil
}

// Create implements the SubscriptionStore interface.
func (m *MockSubscriptionStore) Create(_ context.Context, sub *domain.Subscription) error {
	m.Subscription = sub
	return nil
}

// UpdateStatus implements the SubscriptionStore interface.
func (m *MockSubscriptionStore) UpdateStatus(
	_ context.Context,
	_ uuid.UUID,
	status domain.SubscriptionStatus,
) error {
	if m.Subscription == nil {
		return store.ErrSubscriptionNotFound
	}
	m.Subscription.Status = status
	return nil
}

// WithTx implements the SubscriptionStore interface.
func (m *MockSubscriptionStore) WithTx(_ *sql.Tx) store.SubscriptionStore {
	return m
}

package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus captures the lifecycle state of a subscription.
type SubscriptionStatus string

// Possible subscription status values
const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription-specific validation errors
var (
	// ErrSubscriptionIDEmpty is returned when a subscription ID is empty or nil.
	ErrSubscriptionIDEmpty = errors.New("subscription ID cannot be empty")

	// ErrSubscriptionUserIDEmpty is returned when a subscription's user ID is empty or nil.
	ErrSubscriptionUserIDEmpty = errors.New("subscription user ID cannot be empty")

	// ErrInvalidSubscriptionStatus is returned when a subscription status is not valid.
	ErrInvalidSubscriptionStatus = errors.New("invalid subscription status")
)

// Subscription tracks the paid tier for a user. A cancelled subscription
// keeps its benefits until it expires.
type Subscription struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Status    SubscriptionStatus `json:"status"`
	ExpiresAt time.Time          `json:"expires_at"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Qualifies reports whether the subscription grants premium access at the
// given instant. Both active and cancelled-but-unexpired subscriptions qualify.
func (s *Subscription) Qualifies(now time.Time) bool {
	switch s.Status {
	case SubscriptionStatusActive, SubscriptionStatusCancelled:
		return s.ExpiresAt.After(now)
	default:
		return false
	}
}

// Validate checks if the Subscription has valid data.
func (s *Subscription) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSubscriptionIDEmpty
	}

	if s.UserID == uuid.Nil {
		return ErrSubscriptionUserIDEmpty
	}

	switch s.Status {
	case SubscriptionStatusActive, SubscriptionStatusCancelled:
	default:
		return ErrInvalidSubscriptionStatus
	}

	return nil
}

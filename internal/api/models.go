package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/content"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/dictionary"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// GoogleLoginRequest defines the payload for federated Google sign-in.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SaveWordRequest defines the payload for saving a word to the user's
// vocabulary list. The word is identified by its position in a book.
type SaveWordRequest struct {
	Word         string `json:"word"          validate:"required"`
	Translation  string `json:"translation"   validate:"required"`
	BookID       int64  `json:"book_id"       validate:"required"`
	PageNumber   int    `json:"page_number"   validate:"gte=0"`
	Volume       string `json:"volume"`
	WordPosition int    `json:"word_position" validate:"gte=0"`
}

// Key converts the request into the domain word key.
func (r SaveWordRequest) Key() domain.WordKey {
	return domain.WordKey{
		Word:         r.Word,
		BookID:       r.BookID,
		PageNumber:   r.PageNumber,
		Volume:       r.Volume,
		WordPosition: r.WordPosition,
	}
}

// SaveWordResponse defines the successful response for a word save.
type SaveWordResponse struct {
	Item *domain.VocabularyItem `json:"item"`

	// Outcome tags why the save was admitted: "premium", "under_limit" or
	// "existing_entry".
	Outcome vocabulary.AdmissionOutcome `json:"outcome"`

	// Created is true when a new row was inserted rather than updated.
	Created bool `json:"created"`
}

// FreeLimitResponse is the error payload for a save denied by the free-tier cap.
type FreeLimitResponse struct {
	Error   string `json:"error"`
	Limit   int    `json:"limit"`
	Count   int    `json:"count"`
	TraceID string `json:"trace_id,omitempty"`
}

// SubmitReviewRequest defines the payload for recording a review outcome.
// Correct is a pointer so a missing field is distinguishable from false.
type SubmitReviewRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// SubmitReviewResponse defines the successful response for a recorded review.
type SubmitReviewResponse struct {
	Item         *domain.VocabularyItem `json:"item"`
	IntervalDays int                    `json:"interval_days"`
	NextReviewAt time.Time              `json:"next_review_at"`
}

// DueItemsResponse defines the response for the due-items listing.
type DueItemsResponse struct {
	Items []*domain.VocabularyItem `json:"items"`
	Count int                      `json:"count"`
}

// BookListResponse defines the response for the book catalog listing.
type BookListResponse struct {
	Books []content.BookSummary `json:"books"`
	Count int                   `json:"count"`
}

// BookResponse defines the response for a single book fetch.
type BookResponse struct {
	Book *content.Book `json:"book"`
}

// DefinitionResponse defines the response for a dictionary lookup.
type DefinitionResponse struct {
	Word        string                  `json:"word"`
	Definitions []dictionary.Definition `json:"definitions"`
}

// SubscriptionStatusResponse defines the response for the subscription
// status endpoint.
type SubscriptionStatusResponse struct {
	Premium   bool       `json:"premium"`
	Status    string     `json:"status,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// HealthResponse defines the response for the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

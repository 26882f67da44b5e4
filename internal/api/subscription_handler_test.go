package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/mocks"
)

func TestSubscriptionStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	tests := []struct {
		name        string
		sub         *domain.Subscription
		wantPremium bool
		wantStatus  string
	}{
		{
			name: "active subscription",
			sub: &domain.Subscription{
				ID:        uuid.New(),
				UserID:    userID,
				Status:    domain.SubscriptionStatusActive,
				ExpiresAt: now.AddDate(1, 0, 0),
			},
			wantPremium: true,
			wantStatus:  "active",
		},
		{
			name: "cancelled but unexpired",
			sub: &domain.Subscription{
				ID:        uuid.New(),
				UserID:    userID,
				Status:    domain.SubscriptionStatusCancelled,
				ExpiresAt: now.AddDate(0, 1, 0),
			},
			wantPremium: true,
			wantStatus:  "cancelled",
		},
		{
			name:        "no subscription",
			sub:         nil,
			wantPremium: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewSubscriptionHandler(&mocks.MockSubscriptionStore{Subscription: tt.sub})
			handler.timeFunc = func() time.Time { return now }

			req := authedRequest(t, http.MethodGet, "/api/subscription", userID, nil, nil)
			w := httptest.NewRecorder()
			handler.Status(w, req)

			require.Equal(t, http.StatusOK, w.Code)

			var resp SubscriptionStatusResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantPremium, resp.Premium)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestSubscriptionStatus_LookupFailure(t *testing.T) {
	t.Parallel()

	handler := NewSubscriptionHandler(&mocks.MockSubscriptionStore{Err: errors.New("connection reset")})

	req := authedRequest(t, http.MethodGet, "/api/subscription", uuid.New(), nil, nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubscriptionStatus_Unauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewSubscriptionHandler(&mocks.MockSubscriptionStore{})

	req := authedRequest(t, http.MethodGet, "/api/subscription", uuid.Nil, nil, nil)
	w := httptest.NewRecorder()
	handler.Status(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// SubscriptionHandler handles subscription status API requests.
type SubscriptionHandler struct {
	subscriptionStore store.SubscriptionStore
	timeFunc          func() time.Time
}

// NewSubscriptionHandler creates a new SubscriptionHandler with the given dependencies.
func NewSubscriptionHandler(subscriptionStore store.SubscriptionStore) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionStore: subscriptionStore,
		timeFunc:          time.Now,
	}
}

// Status handles GET /subscription, reporting whether the user currently
// holds premium access. No subscription record is a normal free-tier answer.
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	now := h.timeFunc().UTC()
	sub, err := h.subscriptionStore.GetQualifying(r.Context(), userID, now)
	if err != nil {
		if errors.Is(err, store.ErrSubscriptionNotFound) {
			RespondWithJSON(w, r, http.StatusOK, SubscriptionStatusResponse{Premium: false})
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	expiresAt := sub.ExpiresAt
	RespondWithJSON(w, r, http.StatusOK, SubscriptionStatusResponse{
		Premium:   sub.Qualifies(now),
		Status:    string(sub.Status),
		ExpiresAt: &expiresAt,
	})
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/content"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/dictionary"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/auth"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/review"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid google token", auth.ErrGoogleTokenInvalid, http.StatusUnauthorized},
		{"free limit", &vocabulary.LimitError{Limit: 5, Count: 5}, http.StatusForbidden},
		{"item not found", review.ErrItemNotFound, http.StatusNotFound},
		{"item not owned answers like missing", review.ErrItemNotOwned, http.StatusNotFound},
		{"store not found", store.ErrVocabularyNotFound, http.StatusNotFound},
		{"book not found", content.ErrBookNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"validation", fmt.Errorf("%w: bad key", domain.ErrValidation), http.StatusBadRequest},
		{"dictionary timeout", dictionary.ErrLookupTimeout, http.StatusGatewayTimeout},
		{"dictionary down", dictionary.ErrDictionaryUnavailable, http.StatusBadGateway},
		{"archive down", content.ErrContentUnavailable, http.StatusBadGateway},
		{"google down", auth.ErrGoogleUnavailable, http.StatusBadGateway},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverLeaksInternals(t *testing.T) {
	t.Parallel()

	internal := fmt.Errorf("pq: connection to 10.0.0.5:5432 refused")
	msg := GetSafeErrorMessage(internal)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "10.0.0.5")

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestGetSafeErrorMessage_FreeLimit(t *testing.T) {
	t.Parallel()

	err := &vocabulary.LimitError{Limit: 5, Count: 5}
	assert.Equal(t, "Free tier vocabulary limit reached", GetSafeErrorMessage(err))
}

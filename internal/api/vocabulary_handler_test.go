package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmansheikhutk/readarabicbackend/internal/api/shared"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/mocks"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/review"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
)

// authedRequest builds a request carrying an authenticated user ID, a JSON
// body and optional chi path parameters.
func authedRequest(
	t *testing.T,
	method, target string,
	userID uuid.UUID,
	payload interface{},
	pathParams map[string]string,
) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if userID != uuid.Nil {
		ctx = context.WithValue(ctx, shared.UserIDContextKey, userID)
	}
	if len(pathParams) > 0 {
		routeCtx := chi.NewRouteContext()
		for k, v := range pathParams {
			routeCtx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}

	return req.WithContext(ctx)
}

func sampleItem(t *testing.T, userID uuid.UUID) *domain.VocabularyItem {
	t.Helper()
	item, err := domain.NewVocabularyItem(userID, domain.WordKey{
		Word: "كتاب", BookID: 10, PageNumber: 3, Volume: "1", WordPosition: 7,
	}, "book")
	require.NoError(t, err)
	return item
}

func TestSaveWord(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	item := sampleItem(t, userID)

	vocabService := &mocks.MockVocabularyService{
		Result: &vocabulary.SaveWordResult{
			Item:    item,
			Outcome: vocabulary.AdmissionUnderLimit,
			Created: true,
		},
	}
	handler := NewVocabularyHandler(vocabService, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodPost, "/api/vocabulary", userID, map[string]interface{}{
		"word":          "كتاب",
		"translation":   "book",
		"book_id":       10,
		"page_number":   3,
		"volume":        "1",
		"word_position": 7,
	}, nil)
	w := httptest.NewRecorder()
	handler.SaveWord(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SaveWordResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, vocabulary.AdmissionUnderLimit, resp.Outcome)
	assert.True(t, resp.Created)
	assert.Equal(t, "كتاب", resp.Item.Word)
}

func TestSaveWord_ExistingEntryIsOK(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	vocabService := &mocks.MockVocabularyService{
		Result: &vocabulary.SaveWordResult{
			Item:    sampleItem(t, userID),
			Outcome: vocabulary.AdmissionExistingEntry,
			Created: false,
		},
	}
	handler := NewVocabularyHandler(vocabService, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodPost, "/api/vocabulary", userID, map[string]interface{}{
		"word":        "كتاب",
		"translation": "livre",
		"book_id":     10,
	}, nil)
	w := httptest.NewRecorder()
	handler.SaveWord(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSaveWord_FreeLimitReached(t *testing.T) {
	t.Parallel()

	vocabService := &mocks.MockVocabularyService{
		Err: &vocabulary.LimitError{Limit: 5, Count: 5},
	}
	handler := NewVocabularyHandler(vocabService, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodPost, "/api/vocabulary", uuid.New(), map[string]interface{}{
		"word":        "كتاب",
		"translation": "book",
		"book_id":     10,
	}, nil)
	w := httptest.NewRecorder()
	handler.SaveWord(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var resp FreeLimitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 5, resp.Limit)
	assert.Equal(t, 5, resp.Count)
}

func TestSaveWord_Unauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodPost, "/api/vocabulary", uuid.Nil, map[string]interface{}{
		"word":        "كتاب",
		"translation": "book",
		"book_id":     10,
	}, nil)
	w := httptest.NewRecorder()
	handler.SaveWord(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveWord_MissingFields(t *testing.T) {
	t.Parallel()

	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodPost, "/api/vocabulary", uuid.New(), map[string]interface{}{
		"word": "كتاب",
	}, nil)
	w := httptest.NewRecorder()
	handler.SaveWord(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDue(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	reviewService := &mocks.MockReviewService{
		DueItems: []*domain.VocabularyItem{sampleItem(t, userID)},
	}
	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, reviewService)

	req := authedRequest(t, http.MethodGet, "/api/vocabulary/due", userID, nil, nil)
	w := httptest.NewRecorder()
	handler.ListDue(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp DueItemsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Items, 1)
}

func TestListDue_EmptyList(t *testing.T) {
	t.Parallel()

	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodGet, "/api/vocabulary/due", uuid.New(), nil, nil)
	w := httptest.NewRecorder()
	handler.ListDue(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`, "empty list serializes as [], not null")
}

func TestListDue_BookFilter(t *testing.T) {
	t.Parallel()

	var gotBookID *int64
	reviewService := &mocks.MockReviewService{
		ListDueFn: func(_ context.Context, _ uuid.UUID, bookID *int64) ([]*domain.VocabularyItem, error) {
			gotBookID = bookID
			return []*domain.VocabularyItem{}, nil
		},
	}
	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, reviewService)

	req := authedRequest(t, http.MethodGet, "/api/vocabulary/due?book_id=10", uuid.New(), nil, nil)
	w := httptest.NewRecorder()
	handler.ListDue(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotBookID)
	assert.Equal(t, int64(10), *gotBookID)
}

func TestListDue_InvalidBookFilter(t *testing.T) {
	t.Parallel()

	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodGet, "/api/vocabulary/due?book_id=ten", uuid.New(), nil, nil)
	w := httptest.NewRecorder()
	handler.ListDue(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReview(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	item := sampleItem(t, userID)
	item.ReviewCount = 1
	item.NextReviewAt = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	reviewService := &mocks.MockReviewService{
		SubmitResult: &review.SubmitResult{Item: item, IntervalDays: 1},
	}
	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, reviewService)

	req := authedRequest(t, http.MethodPost, "/api/vocabulary/"+item.ID.String()+"/review",
		userID, map[string]interface{}{"correct": true},
		map[string]string{"id": item.ID.String()})
	w := httptest.NewRecorder()
	handler.SubmitReview(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SubmitReviewResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.IntervalDays)
	assert.Equal(t, item.NextReviewAt, resp.NextReviewAt)
}

func TestSubmitReview_MissingOutcome(t *testing.T) {
	t.Parallel()

	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, &mocks.MockReviewService{})
	itemID := uuid.New()

	req := authedRequest(t, http.MethodPost, "/api/vocabulary/"+itemID.String()+"/review",
		uuid.New(), map[string]interface{}{},
		map[string]string{"id": itemID.String()})
	w := httptest.NewRecorder()
	handler.SubmitReview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReview_FalseOutcomeIsValid(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	item := sampleItem(t, userID)
	var gotCorrect *bool
	reviewService := &mocks.MockReviewService{
		SubmitReviewFn: func(_ context.Context, _, _ uuid.UUID, correct bool) (*review.SubmitResult, error) {
			gotCorrect = &correct
			return &review.SubmitResult{Item: item, IntervalDays: 1}, nil
		},
	}
	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, reviewService)

	req := authedRequest(t, http.MethodPost, "/api/vocabulary/"+item.ID.String()+"/review",
		userID, map[string]interface{}{"correct": false},
		map[string]string{"id": item.ID.String()})
	w := httptest.NewRecorder()
	handler.SubmitReview(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotCorrect)
	assert.False(t, *gotCorrect)
}

func TestSubmitReview_NotFoundAndNotOwned(t *testing.T) {
	t.Parallel()

	for _, svcErr := range []error{review.ErrItemNotFound, review.ErrItemNotOwned} {
		handler := NewVocabularyHandler(&mocks.MockVocabularyService{},
			&mocks.MockReviewService{SubmitErr: svcErr})
		itemID := uuid.New()

		req := authedRequest(t, http.MethodPost, "/api/vocabulary/"+itemID.String()+"/review",
			uuid.New(), map[string]interface{}{"correct": true},
			map[string]string{"id": itemID.String()})
		w := httptest.NewRecorder()
		handler.SubmitReview(w, req)

		// Both answer 404 so item IDs cannot be probed across accounts.
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestSubmitReview_InvalidItemID(t *testing.T) {
	t.Parallel()

	handler := NewVocabularyHandler(&mocks.MockVocabularyService{}, &mocks.MockReviewService{})

	req := authedRequest(t, http.MethodPost, "/api/vocabulary/not-a-uuid/review",
		uuid.New(), map[string]interface{}{"correct": true},
		map[string]string{"id": "not-a-uuid"})
	w := httptest.NewRecorder()
	handler.SubmitReview(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

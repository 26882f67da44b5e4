package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/salmansheikhutk/readarabicbackend/internal/api/shared"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/review"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
)

// VocabularyHandler handles vocabulary and review API requests.
type VocabularyHandler struct {
	vocabularyService vocabulary.Service
	reviewService     review.Service
	validator         *validator.Validate
}

// NewVocabularyHandler creates a new VocabularyHandler with the given dependencies.
func NewVocabularyHandler(
	vocabularyService vocabulary.Service,
	reviewService review.Service,
) *VocabularyHandler {
	return &VocabularyHandler{
		vocabularyService: vocabularyService,
		reviewService:     reviewService,
		validator:         validator.New(),
	}
}

// SaveWord handles POST /vocabulary, adding a word to the user's list.
func (h *VocabularyHandler) SaveWord(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req SaveWordRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.vocabularyService.SaveWord(r.Context(), userID, vocabulary.SaveWordInput{
		Key:         req.Key(),
		Translation: req.Translation,
	})
	if err != nil {
		var limitErr *vocabulary.LimitError
		if errors.As(err, &limitErr) {
			// The cap response carries the numbers so the client can show
			// progress toward the limit.
			RespondWithJSON(w, r, http.StatusForbidden, FreeLimitResponse{
				Error:   GetSafeErrorMessage(err),
				Limit:   limitErr.Limit,
				Count:   limitErr.Count,
				TraceID: shared.GetTraceID(r.Context()),
			})
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	RespondWithJSON(w, r, status, SaveWordResponse{
		Item:    result.Item,
		Outcome: result.Outcome,
		Created: result.Created,
	})
}

// ListDue handles GET /vocabulary/due, returning the user's items due for
// review. An optional book_id query parameter restricts the list to one book.
func (h *VocabularyHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var bookID *int64
	if raw := r.URL.Query().Get("book_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			RespondWithError(w, r, http.StatusBadRequest, "book_id must be numeric")
			return
		}
		bookID = &parsed
	}

	items, err := h.reviewService.ListDue(r.Context(), userID, bookID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DueItemsResponse{
		Items: items,
		Count: len(items),
	})
}

// SubmitReview handles POST /vocabulary/{id}/review, recording a pass/fail
// outcome and returning the rescheduled item.
func (h *VocabularyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	itemID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req SubmitReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.reviewService.SubmitReview(r.Context(), userID, itemID, *req.Correct)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, SubmitReviewResponse{
		Item:         result.Item,
		IntervalDays: result.IntervalDays,
		NextReviewAt: result.Item.NextReviewAt,
	})
}

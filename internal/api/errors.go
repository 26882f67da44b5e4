package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/salmansheikhutk/readarabicbackend/internal/domain"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/content"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/dictionary"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/auth"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/review"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrGoogleTokenInvalid),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Free-tier cap
	case errors.Is(err, vocabulary.ErrFreeLimitReached):
		return http.StatusForbidden

	// Not found errors. An item owned by another user answers like a
	// missing item so IDs cannot be probed across accounts.
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, review.ErrItemNotFound),
		errors.Is(err, review.ErrItemNotOwned),
		errors.Is(err, content.ErrBookNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Collaborator failures
	case errors.Is(err, dictionary.ErrLookupTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, dictionary.ErrDictionaryUnavailable),
		errors.Is(err, content.ErrContentUnavailable),
		errors.Is(err, auth.ErrGoogleUnavailable):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrGoogleTokenInvalid):
		return "Invalid Google ID token"

	case errors.Is(err, auth.ErrGoogleUnavailable):
		return "Sign-in service unavailable"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Free-tier cap
	case errors.Is(err, vocabulary.ErrFreeLimitReached):
		return "Free tier vocabulary limit reached"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, review.ErrItemNotFound),
		errors.Is(err, review.ErrItemNotOwned),
		errors.Is(err, store.ErrVocabularyNotFound):
		return "Vocabulary item not found"

	case errors.Is(err, content.ErrBookNotFound):
		return "Book not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	// Collaborator failures
	case errors.Is(err, dictionary.ErrLookupTimeout):
		return "Dictionary did not respond in time"
	case errors.Is(err, dictionary.ErrDictionaryUnavailable):
		return "Dictionary unavailable"
	case errors.Is(err, content.ErrContentUnavailable):
		return "Book archive unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a tag-based validation failure into a
// user-friendly message without echoing the submitted values back.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				if len(fieldParts) >= 5 {
					return "Invalid " + field + ": " + validationTagMessage(fieldParts[3])
				}
				return "Invalid " + field
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "value too small"
	default:
		return "validation failed"
	}
}

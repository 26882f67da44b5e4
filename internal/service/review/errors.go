package review

import "errors"

// Review service errors
var (
	// ErrItemNotFound indicates the vocabulary item does not exist.
	ErrItemNotFound = errors.New("vocabulary item not found")

	// ErrItemNotOwned indicates the item belongs to a different user.
	// Surfaced to clients identically to a missing item so IDs cannot be
	// probed across accounts.
	ErrItemNotOwned = errors.New("vocabulary item not owned by user")
)

package vocabulary

import (
	"errors"
	"fmt"
)

// ErrFreeLimitReached indicates a free-tier user tried to save a new word
// past the saved-word cap. Sentinels for errors.Is checks; LimitError carries
// the numbers.
var ErrFreeLimitReached = errors.New("free tier vocabulary limit reached")

// LimitError reports a denied save together with the cap and the user's
// current count, so callers can surface both to the client.
type LimitError struct {
	Limit int
	Count int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("free tier vocabulary limit reached: %d of %d words saved", e.Count, e.Limit)
}

// Unwrap makes errors.Is(err, ErrFreeLimitReached) work on LimitError values.
func (e *LimitError) Unwrap() error {
	return ErrFreeLimitReached
}

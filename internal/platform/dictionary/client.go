// Package dictionary looks up Arabic word definitions from the AraTools API.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/salmansheikhutk/readarabicbackend/internal/config"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/logger"
)

// The upstream rejects requests without a browser-looking User-Agent.
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Dictionary lookup errors
var (
	// ErrLookupTimeout indicates the dictionary did not answer in time.
	ErrLookupTimeout = errors.New("dictionary lookup timed out")

	// ErrDictionaryUnavailable indicates the dictionary could not be reached
	// or answered with an error.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
)

// Definition is one dictionary entry for a looked-up word.
type Definition struct {
	// Form is the vocalized form of the word.
	Form string `json:"form"`
	// Gloss is the English meaning.
	Gloss string `json:"gloss"`
	// Root is the triliteral root with letters joined by dashes, or empty
	// when the upstream has no root for the entry.
	Root string `json:"root,omitempty"`
}

// Result is the outcome of a word lookup. Definitions may be empty when the
// word is unknown to the dictionary; that is not an error.
type Result struct {
	Word        string       `json:"word"`
	Definitions []Definition `json:"definitions"`
}

// lookupResponse mirrors the upstream response shape.
type lookupResponse struct {
	Words []struct {
		VocForm   string `json:"voc_form"`
		Form      string `json:"form"`
		NiceGloss string `json:"nice_gloss"`
		Root      string `json:"root"`
	} `json:"words"`
}

// Client looks up word definitions.
type Client interface {
	// Lookup fetches definitions for the given word.
	// Returns ErrLookupTimeout when the upstream does not answer in time.
	Lookup(ctx context.Context, word string) (*Result, error)
}

type httpClient struct {
	client  *http.Client
	baseURL string
}

var _ Client = (*httpClient)(nil)

// NewClient creates a dictionary client from configuration.
func NewClient(cfg config.DictionaryConfig) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// Lookup implements the Client interface.
func (c *httpClient) Lookup(ctx context.Context, word string) (*Result, error) {
	log := logger.FromContext(ctx)

	if word == "" {
		return nil, fmt.Errorf("word cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Warn("dictionary lookup timed out", "word", word)
			return nil, fmt.Errorf("%w: %s", ErrLookupTimeout, word)
		}
		log.Warn("dictionary request failed", "word", word, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDictionaryUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		log.Warn("dictionary returned unexpected status",
			"word", word,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrDictionaryUnavailable, resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed lookup response: %v", ErrDictionaryUnavailable, err)
	}

	result := &Result{
		Word:        word,
		Definitions: make([]Definition, 0, len(payload.Words)),
	}
	for _, entry := range payload.Words {
		form := entry.VocForm
		if form == "" {
			form = entry.Form
		}
		result.Definitions = append(result.Definitions, Definition{
			Form:  form,
			Gloss: entry.NiceGloss,
			Root:  dashJoinRoot(entry.Root),
		})
	}

	return result, nil
}

// isTimeout reports whether the request failed on a deadline rather than a
// transport error.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}

// dashJoinRoot renders a root string letter by letter with dash separators,
// e.g. "كتب" becomes "ك-ت-ب".
func dashJoinRoot(root string) string {
	if root == "" {
		return ""
	}
	letters := strings.Split(root, "")
	return strings.Join(letters, "-")
}

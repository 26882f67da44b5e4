// Package content provides read access to the upstream book archive.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/salmansheikhutk/readarabicbackend/internal/config"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/logger"
)

// Content source errors
var (
	// ErrBookNotFound indicates the archive has no book with the given ID.
	ErrBookNotFound = errors.New("book not found")

	// ErrContentUnavailable indicates the archive could not be reached or
	// answered with a server error.
	ErrContentUnavailable = errors.New("book archive unavailable")
)

// BookMeta is the metadata block of an archived book.
type BookMeta struct {
	Name string `json:"name"`
	// Info is a free-form Arabic description block that usually carries the
	// author on a line of its own.
	Info string `json:"info"`
}

// Book is the full payload of an archived book: metadata plus page content.
// Page data is passed through untouched; the reader renders it client-side.
type Book struct {
	Meta    BookMeta        `json:"meta"`
	Indexes json.RawMessage `json:"indexes,omitempty"`
	Pages   json.RawMessage `json:"pages,omitempty"`
}

// BookSummary is the catalog listing entry for a book.
type BookSummary struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Client fetches books from the archive.
type Client interface {
	// GetBook fetches the full book with the given ID.
	// Returns ErrBookNotFound when the archive has no such book.
	GetBook(ctx context.Context, bookID int64) (*Book, error)

	// ListBooks returns catalog summaries for the configured book IDs.
	// Books the archive cannot serve are skipped rather than failing the
	// whole listing.
	ListBooks(ctx context.Context) ([]BookSummary, error)
}

type httpClient struct {
	client  *http.Client
	baseURL string
	catalog []int64
}

var _ Client = (*httpClient)(nil)

// NewClient creates an archive client from configuration.
func NewClient(cfg config.ContentConfig) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &httpClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		catalog: cfg.CatalogBookIDs,
	}
}

// GetBook implements the Client interface.
func (c *httpClient) GetBook(ctx context.Context, bookID int64) (*Book, error) {
	log := logger.FromContext(ctx)

	url := fmt.Sprintf("%s/%d.json", c.baseURL, bookID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build book request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("book archive request failed", "book_id", bookID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		// The archive answers 403 for IDs outside the published set.
		return nil, fmt.Errorf("%w: book %d", ErrBookNotFound, bookID)
	default:
		log.Warn("book archive returned unexpected status",
			"book_id", bookID,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrContentUnavailable, resp.StatusCode)
	}

	var book Book
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return nil, fmt.Errorf("%w: malformed book payload: %v", ErrContentUnavailable, err)
	}

	return &book, nil
}

// ListBooks implements the Client interface.
func (c *httpClient) ListBooks(ctx context.Context) ([]BookSummary, error) {
	log := logger.FromContext(ctx)

	summaries := make([]BookSummary, 0, len(c.catalog))
	for _, bookID := range c.catalog {
		book, err := c.GetBook(ctx, bookID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("skipping catalog book", "book_id", bookID, "error", err)
			continue
		}

		title := book.Meta.Name
		if title == "" {
			title = fmt.Sprintf("Book %d", bookID)
		}

		summaries = append(summaries, BookSummary{
			ID:     bookID,
			Title:  title,
			Author: extractAuthor(book.Meta.Info),
			URL:    fmt.Sprintf("/api/book/%d", bookID),
		})
	}

	return summaries, nil
}

// extractAuthor pulls the author name out of the free-form metadata block.
// The archive writes it as a labelled line such as "المؤلف: ...".
func extractAuthor(info string) string {
	if !strings.Contains(info, "مؤلف") {
		return "Unknown"
	}

	for _, line := range strings.Split(info, "\n") {
		if !strings.Contains(line, "مؤلف") {
			continue
		}
		if idx := strings.LastIndex(line, ":"); idx >= 0 {
			return strings.TrimSpace(line[idx+1:])
		}
		return strings.TrimSpace(line)
	}

	return "Unknown"
}

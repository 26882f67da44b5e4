package api

import (
	"net/http"

	"github.com/salmansheikhutk/readarabicbackend/internal/platform/content"
)

// BookHandler handles book catalog and content API requests.
type BookHandler struct {
	contentClient content.Client
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(contentClient content.Client) *BookHandler {
	return &BookHandler{
		contentClient: contentClient,
	}
}

// ListBooks handles GET /books, returning the catalog of available books.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.contentClient.ListBooks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, BookListResponse{
		Books: books,
		Count: len(books),
	})
}

// GetBook handles GET /book/{id}, returning the full content of one book.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := getPathInt64(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	book, err := h.contentClient.GetBook(r.Context(), bookID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, BookResponse{Book: book})
}

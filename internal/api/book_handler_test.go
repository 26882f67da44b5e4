package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmansheikhutk/readarabicbackend/internal/platform/content"
)

// mockContentClient implements content.Client for testing.
type mockContentClient struct {
	book    *content.Book
	books   []content.BookSummary
	getErr  error
	listErr error
}

func (m *mockContentClient) GetBook(_ context.Context, _ int64) (*content.Book, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.book, nil
}

func (m *mockContentClient) ListBooks(_ context.Context) ([]content.BookSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.books, nil
}

func getWithPathParams(target string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if len(pathParams) > 0 {
		routeCtx := chi.NewRouteContext()
		for k, v := range pathParams {
			routeCtx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	}
	return req
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	handler := NewBookHandler(&mockContentClient{
		books: []content.BookSummary{
			{ID: 10, Title: "قصص الأنبياء", Author: "ابن كثير", URL: "/api/book/10"},
		},
	})

	w := httptest.NewRecorder()
	handler.ListBooks(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp BookListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "قصص الأنبياء", resp.Books[0].Title)
}

func TestGetBook(t *testing.T) {
	t.Parallel()

	handler := NewBookHandler(&mockContentClient{
		book: &content.Book{Meta: content.BookMeta{Name: "قصص الأنبياء"}},
	})

	w := httptest.NewRecorder()
	handler.GetBook(w, getWithPathParams("/api/book/10", map[string]string{"id": "10"}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp BookResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "قصص الأنبياء", resp.Book.Meta.Name)
}

func TestGetBook_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewBookHandler(&mockContentClient{getErr: content.ErrBookNotFound})

	w := httptest.NewRecorder()
	handler.GetBook(w, getWithPathParams("/api/book/999", map[string]string{"id": "999"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBook_ArchiveDown(t *testing.T) {
	t.Parallel()

	handler := NewBookHandler(&mockContentClient{getErr: content.ErrContentUnavailable})

	w := httptest.NewRecorder()
	handler.GetBook(w, getWithPathParams("/api/book/10", map[string]string{"id": "10"}))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetBook_InvalidID(t *testing.T) {
	t.Parallel()

	handler := NewBookHandler(&mockContentClient{})

	w := httptest.NewRecorder()
	handler.GetBook(w, getWithPathParams("/api/book/ten", map[string]string{"id": "ten"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

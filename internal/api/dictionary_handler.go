package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salmansheikhutk/readarabicbackend/internal/platform/dictionary"
)

// DictionaryHandler handles word definition API requests.
type DictionaryHandler struct {
	dictionaryClient dictionary.Client
}

// NewDictionaryHandler creates a new DictionaryHandler with the given dependencies.
func NewDictionaryHandler(dictionaryClient dictionary.Client) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryClient: dictionaryClient,
	}
}

// Define handles GET /define/{word}, looking up definitions for a word.
// An unknown word answers with an empty definition list, not an error.
func (h *DictionaryHandler) Define(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	if word == "" {
		RespondWithError(w, r, http.StatusBadRequest, "word is required")
		return
	}

	result, err := h.dictionaryClient.Lookup(r.Context(), word)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DefinitionResponse{
		Word:        result.Word,
		Definitions: result.Definitions,
	})
}

package gallery

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/iconkit/pkg/catalog"
	"github.com/dmitrymomot/iconkit/pkg/logger"
)

// LibraryResponse is the JSON shape of one library with the names of the
// requested variant.
type LibraryResponse struct {
	catalog.Entry
	Variant string   `json:"variant"`
	Icons   []string `json:"icons"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (g *Gallery) listLibraries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, g.catalog.Entries())
}

func (g *Gallery) getLibrary(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "library")
	entry, ok := g.catalog.Entry(key)
	if !ok {
		g.writeError(w, r, catalog.ErrUnknownLibrary)
		return
	}

	variant := variantParam(r, entry)
	names, err := g.catalog.Names(r.Context(), key, variant)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LibraryResponse{Entry: entry, Variant: variant, Icons: names})
}

// variantParam returns the variant query parameter, defaulting to the
// library's default variant.
func variantParam(r *http.Request, entry catalog.Entry) string {
	if v := r.URL.Query().Get("variant"); v != "" {
		return v
	}
	return entry.DefaultSuffix
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (g *Gallery) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		g.log.ErrorContext(r.Context(), "gallery request failed", logger.Error(err))
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestIDFromContext(r.Context())})
}

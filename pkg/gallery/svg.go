package gallery

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/iconkit/pkg/catalog"
)

// svg serves /icons/{library}/{name}.svg. Sized renderings are cached; the
// icon definitions themselves are cached by the icon sets.
func (g *Gallery) svg(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "library")
	name, ok := strings.CutSuffix(chi.URLParam(r, "file"), ".svg")
	if !ok || name == "" {
		g.writeError(w, r, ErrMissingSVGSuffix)
		return
	}

	entry, found := g.catalog.Entry(key)
	if !found {
		g.writeError(w, r, catalog.ErrUnknownLibrary)
		return
	}
	size, err := g.parseSize(r, 0)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	markup, err := g.render(r, renderKey{
		library: key,
		variant: variantParam(r, entry),
		name:    name,
		size:    size,
	})
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(markup))
}

func (g *Gallery) render(r *http.Request, k renderKey) (string, error) {
	return g.rendered.GetOrCompute(k, func() (string, error) {
		def, err := g.catalog.Variant(r.Context(), k.library, k.variant, k.name)
		if err != nil {
			return "", err
		}
		return def.WithSize(k.size), nil
	})
}

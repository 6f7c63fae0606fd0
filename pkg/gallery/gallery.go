package gallery

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/iconkit/pkg/cache"
	"github.com/dmitrymomot/iconkit/pkg/catalog"
	"github.com/dmitrymomot/iconkit/pkg/httpserver"
	"github.com/dmitrymomot/iconkit/pkg/logger"
)

const (
	defaultCacheSize   = 2048
	defaultMaxSize     = 512
	defaultPreviewSize = 32
)

// renderKey identifies one sized rendering of an icon.
type renderKey struct {
	library, variant, name string
	size                   int
}

// Gallery serves a catalog over HTTP: a JSON API, sized SVG files and HTML
// previews.
type Gallery struct {
	catalog   *catalog.Catalog
	log       *slog.Logger
	cacheSize int
	maxSize   int
	checks    []httpserver.Check
	rendered  *cache.LRU[renderKey, string]
}

// New creates a gallery for cat.
func New(cat *catalog.Catalog, opts ...Option) *Gallery {
	g := &Gallery{
		catalog:   cat,
		log:       logger.NewNop(),
		cacheSize: defaultCacheSize,
		maxSize:   defaultMaxSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("gallery"))
	g.rendered = cache.New[renderKey, string](g.cacheSize)
	return g
}

// Handler returns the gallery routes:
//
//	GET /                                   HTML list of libraries
//	GET /libraries/{library}?variant=&size= HTML preview of one variant
//	GET /icons/{library}/{name}.svg?variant=&size=
//	GET /api/libraries
//	GET /api/libraries/{library}?variant=
//	GET /healthz, /readyz
func (g *Gallery) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, accessLog(g.log), middleware.Recoverer)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(g.log, g.checks...))

	r.Get("/", g.indexPage)
	r.Get("/libraries/{library}", g.libraryPage)
	r.Get("/icons/{library}/{file}", g.svg)

	r.Route("/api", func(api chi.Router) {
		api.Get("/libraries", g.listLibraries)
		api.Get("/libraries/{library}", g.getLibrary)
	})

	return r
}

// CacheStats reports the sized rendering cache counters.
func (g *Gallery) CacheStats() cache.Stats { return g.rendered.Stats() }

// parseSize reads the size query parameter. Empty means def.
func (g *Gallery) parseSize(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("size")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > g.maxSize {
		return 0, ErrInvalidSize
	}
	return n, nil
}

package gallery

import (
	"log/slog"

	"github.com/dmitrymomot/iconkit/pkg/httpserver"
)

// Option configures a Gallery.
type Option func(*Gallery)

// WithLogger sets the access and error logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gallery) {
		if l != nil {
			g.log = l
		}
	}
}

// WithCacheSize bounds the number of sized SVG renderings kept in memory.
// Defaults to 2048.
func WithCacheSize(n int) Option {
	return func(g *Gallery) {
		if n > 0 {
			g.cacheSize = n
		}
	}
}

// WithMaxSize sets the largest accepted size query parameter. Defaults to 512.
func WithMaxSize(n int) Option {
	return func(g *Gallery) {
		if n > 0 {
			g.maxSize = n
		}
	}
}

// WithReadinessChecks adds probes served on /readyz.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(g *Gallery) {
		g.checks = append(g.checks, checks...)
	}
}

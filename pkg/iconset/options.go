package iconset

import (
	"log/slog"

	"github.com/dmitrymomot/iconkit/pkg/logger"
)

// Option configures icon sets.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for debug diagnostics such as
// case-insensitive resource matches. Nil keeps the default discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

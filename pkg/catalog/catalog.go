package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/iconkit/pkg/icon"
	"github.com/dmitrymomot/iconkit/pkg/iconset"
	"github.com/dmitrymomot/iconkit/pkg/logger"
	"github.com/dmitrymomot/iconkit/pkg/memo"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

// Catalog is an ordered set of icon libraries backed by one resource store.
// Each library gets its own icon set, so caches are never shared between
// libraries. Safe for concurrent use.
type Catalog struct {
	entries   []Entry
	index     map[string]int
	providers []iconset.Provider
	libraries memo.Map[*icon.Library]
	log       *slog.Logger
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the catalog and its icon sets.
func WithLogger(l *slog.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Open validates entries and builds an icon set per library over store.
// Libraries with suffixes become iconset.SuffixedSet, others iconset.Set.
// Keys must be unique.
func Open(store resource.Store, entries []Entry, opts ...Option) (*Catalog, error) {
	o := &openOptions{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(o)
	}

	c := &Catalog{
		entries:   make([]Entry, 0, len(entries)),
		index:     make(map[string]int, len(entries)),
		providers: make([]iconset.Provider, 0, len(entries)),
		log:       o.logger.With(logger.Component("catalog")),
	}

	for _, raw := range entries {
		e, err := raw.normalize()
		if err != nil {
			return nil, err
		}
		if _, dup := c.index[e.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, e.Key)
		}

		setOpts := []iconset.Option{iconset.WithLogger(o.logger.With(logger.Library(e.Key)))}
		var p iconset.Provider
		if e.Suffixed() {
			p = iconset.NewSuffixed(store, e.Namespace, e.DefaultSuffix, e.Suffixes, setOpts...)
		} else {
			p = iconset.New(store, e.Namespace, setOpts...)
		}

		c.index[e.Key] = len(c.entries)
		c.entries = append(c.entries, e)
		c.providers = append(c.providers, p)
	}

	return c, nil
}

// Entries returns the libraries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		e.Suffixes = slices.Clone(e.Suffixes)
		out[i] = e
	}
	return out
}

// Len returns the number of libraries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entry returns the library registered under key.
func (c *Catalog) Entry(key string) (Entry, bool) {
	i, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	e := c.entries[i]
	e.Suffixes = slices.Clone(e.Suffixes)
	return e, true
}

// Provider returns the icon set of a library.
// Suffixed libraries also implement iconset.VariantProvider.
func (c *Catalog) Provider(key string) (iconset.Provider, error) {
	i, ok := c.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibrary, key)
	}
	return c.providers[i], nil
}

// Library materializes every default-variant icon of a library, named after
// its display name. The result is built once and shared afterwards.
func (c *Catalog) Library(ctx context.Context, key string) (*icon.Library, error) {
	i, ok := c.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibrary, key)
	}
	return c.libraries.GetOrLoad(key, func() (*icon.Library, error) {
		icons, err := c.providers[i].PreloadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("preload library %s: %w", key, err)
		}
		c.log.DebugContext(ctx, "library materialized",
			logger.Library(key),
			slog.Int("icons", len(icons)),
		)
		return icon.NewLibrary(c.entries[i].DisplayName, icons), nil
	})
}

// Variant resolves one icon of a library. An empty suffix selects the
// default variant; suffixes on single-variant libraries are rejected with
// iconset.ErrIconNotFound.
func (c *Catalog) Variant(ctx context.Context, key, suffix, name string) (*icon.Definition, error) {
	p, err := c.Provider(key)
	if err != nil {
		return nil, err
	}
	if suffix == "" {
		return p.Get(ctx, name)
	}
	vp, ok := p.(iconset.VariantProvider)
	if !ok {
		return nil, fmt.Errorf("%w: library %s has no variant %q", iconset.ErrIconNotFound, key, suffix)
	}
	return vp.GetVariant(ctx, suffix, name)
}

// Names lists the icon names of one variant of a library; an empty suffix
// selects the default variant.
func (c *Catalog) Names(ctx context.Context, key, suffix string) ([]string, error) {
	p, err := c.Provider(key)
	if err != nil {
		return nil, err
	}
	if suffix == "" {
		return p.IconNames(ctx)
	}
	vp, ok := p.(iconset.VariantProvider)
	if !ok {
		return nil, fmt.Errorf("%w: library %s has no variant %q", iconset.ErrIndexNotFound, key, suffix)
	}
	return vp.GetIconNames(ctx, suffix)
}

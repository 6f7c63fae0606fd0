package iconset

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrymomot/iconkit/pkg/icon"
	"github.com/dmitrymomot/iconkit/pkg/logger"
	"github.com/dmitrymomot/iconkit/pkg/memo"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

// Set is a lazily loaded icon collection without variants.
// Icons are read on first access and cached for the lifetime of the set;
// names are cached ignoring case. It is safe for concurrent use.
type Set struct {
	resolver
	index memo.Value[[]string]
	icons memo.Map[*icon.Definition]
}

// New creates a set reading "<namespace>.Icons.*" resources from store.
func New(store resource.Store, namespace string, opts ...Option) *Set {
	o := newOptions(opts)
	return &Set{
		resolver: resolver{
			store:     store,
			namespace: namespace,
			log:       o.logger.With(logger.Component("iconset"), logger.Namespace(namespace)),
		},
	}
}

// Namespace returns the resource namespace the set reads from.
func (s *Set) Namespace() string { return s.namespace }

// Suffixes is always empty for a set without variants.
func (s *Set) Suffixes() []string { return []string{} }

// DefaultSuffix is always empty for a set without variants.
func (s *Set) DefaultSuffix() string { return "" }

// IconNames returns every icon name listed in the set's index.
// The index is read once; later calls are served from memory.
func (s *Set) IconNames(ctx context.Context) ([]string, error) {
	names, err := s.names(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(names), nil
}

// Get returns the icon named name, loading it on first access.
// The index is not consulted: any name with a matching resource resolves.
// Concurrent callers share one load, which ignores the cancellation of the
// caller that started it.
func (s *Set) Get(ctx context.Context, name string) (*icon.Definition, error) {
	return s.icons.GetOrLoad(foldKey(name), func() (*icon.Definition, error) {
		key := iconKey(s.namespace, "", name)
		svg, found, err := s.readIcon(context.WithoutCancel(ctx), key)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%w: %q, resource: %s", ErrIconNotFound, name, key)
		}
		return icon.New(name, svg), nil
	})
}

// GetOrLoad is an alias of Get for generated accessors.
func (s *Set) GetOrLoad(ctx context.Context, name string) (*icon.Definition, error) {
	return s.Get(ctx, name)
}

// TryGet reports whether name is listed in the index and, if so, resolves it.
// Names missing from the index return (nil, false, nil) without reading any
// icon resource. A listed name whose resource is missing returns
// ErrIconNotFound, as do index failures.
func (s *Set) TryGet(ctx context.Context, name string) (*icon.Definition, bool, error) {
	names, err := s.names(ctx)
	if err != nil {
		return nil, false, err
	}
	if !slices.Contains(names, name) {
		return nil, false, nil
	}

	def, err := s.Get(ctx, name)
	if err != nil {
		return nil, false, err
	}
	return def, true, nil
}

// PreloadAll resolves every indexed icon and returns them keyed by name.
// It defeats lazy loading and is meant for exhaustive listings.
func (s *Set) PreloadAll(ctx context.Context) (map[string]*icon.Definition, error) {
	names, err := s.names(ctx)
	if err != nil {
		return nil, err
	}
	return preload(names, func(name string) (*icon.Definition, error) {
		return s.Get(ctx, name)
	})
}

// Cached returns the number of icons resolved so far.
func (s *Set) Cached() int { return s.icons.Len() }

func (s *Set) names(ctx context.Context) ([]string, error) {
	return s.index.Get(func() ([]string, error) {
		return s.loadIndex(context.WithoutCancel(ctx), "")
	})
}

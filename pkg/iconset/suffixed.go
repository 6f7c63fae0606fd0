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

// SuffixedSet is a lazily loaded icon collection with style variants
// (suffixes) such as "outline" and "solid". Each variant has its own index,
// loaded independently on first use. Icons are cached per exact
// (suffix, name) pair. It is safe for concurrent use.
type SuffixedSet struct {
	resolver
	defaultSuffix string
	suffixes      []string
	indexes       memo.Map[[]string]
	icons         memo.Map[*icon.Definition]
}

// NewSuffixed creates a variant aware set. suffixes is informational: lookups
// for a suffix outside the list are still attempted against the store.
func NewSuffixed(store resource.Store, namespace, defaultSuffix string, suffixes []string, opts ...Option) *SuffixedSet {
	o := newOptions(opts)
	return &SuffixedSet{
		resolver: resolver{
			store:     store,
			namespace: namespace,
			log:       o.logger.With(logger.Component("iconset"), logger.Namespace(namespace)),
		},
		defaultSuffix: defaultSuffix,
		suffixes:      slices.Clone(suffixes),
	}
}

// Namespace returns the resource namespace the set reads from.
func (s *SuffixedSet) Namespace() string { return s.namespace }

// Suffixes returns the declared variants.
func (s *SuffixedSet) Suffixes() []string { return slices.Clone(s.suffixes) }

// DefaultSuffix returns the variant used when none is given.
func (s *SuffixedSet) DefaultSuffix() string { return s.defaultSuffix }

// IconNames returns the index of the default variant.
func (s *SuffixedSet) IconNames(ctx context.Context) ([]string, error) {
	return s.GetIconNames(ctx, s.defaultSuffix)
}

// GetIconNames returns the index of suffix, loading it on first use.
// An unknown suffix fails with ErrIndexNotFound.
func (s *SuffixedSet) GetIconNames(ctx context.Context, suffix string) ([]string, error) {
	names, err := s.names(ctx, suffix)
	if err != nil {
		return nil, err
	}
	return slices.Clone(names), nil
}

// Get returns an icon of the default variant.
func (s *SuffixedSet) Get(ctx context.Context, name string) (*icon.Definition, error) {
	return s.GetVariant(ctx, s.defaultSuffix, name)
}

// GetVariant returns the icon name of variant suffix, loading it on first access.
// The index is not consulted. Loads are shared as in Set.Get.
func (s *SuffixedSet) GetVariant(ctx context.Context, suffix, name string) (*icon.Definition, error) {
	return s.icons.GetOrLoad(pairKey(suffix, name), func() (*icon.Definition, error) {
		key := iconKey(s.namespace, suffix, name)
		svg, found, err := s.readIcon(context.WithoutCancel(ctx), key)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%w: %q (suffix: %q), resource: %s", ErrIconNotFound, name, suffix, key)
		}
		return icon.New(name, svg), nil
	})
}

// GetOrLoad is an alias of Get for generated accessors.
func (s *SuffixedSet) GetOrLoad(ctx context.Context, name string) (*icon.Definition, error) {
	return s.Get(ctx, name)
}

// GetOrLoadVariant is an alias of GetVariant for generated accessors.
func (s *SuffixedSet) GetOrLoadVariant(ctx context.Context, suffix, name string) (*icon.Definition, error) {
	return s.GetVariant(ctx, suffix, name)
}

// TryGet is TryGetVariant for the default variant.
func (s *SuffixedSet) TryGet(ctx context.Context, name string) (*icon.Definition, bool, error) {
	return s.TryGetVariant(ctx, s.defaultSuffix, name)
}

// TryGetVariant checks name against the index of suffix before resolving it.
// Semantics match Set.TryGet.
func (s *SuffixedSet) TryGetVariant(ctx context.Context, suffix, name string) (*icon.Definition, bool, error) {
	names, err := s.names(ctx, suffix)
	if err != nil {
		return nil, false, err
	}
	if !slices.Contains(names, name) {
		return nil, false, nil
	}

	def, err := s.GetVariant(ctx, suffix, name)
	if err != nil {
		return nil, false, err
	}
	return def, true, nil
}

// PreloadAll resolves every icon of the default variant.
func (s *SuffixedSet) PreloadAll(ctx context.Context) (map[string]*icon.Definition, error) {
	return s.PreloadVariant(ctx, s.defaultSuffix)
}

// PreloadVariant resolves every icon listed for suffix. Names differing only
// by letter case collapse into one entry.
func (s *SuffixedSet) PreloadVariant(ctx context.Context, suffix string) (map[string]*icon.Definition, error) {
	names, err := s.names(ctx, suffix)
	if err != nil {
		return nil, err
	}
	return preload(names, func(name string) (*icon.Definition, error) {
		return s.GetVariant(ctx, suffix, name)
	})
}

// Cached returns the number of (suffix, name) pairs resolved so far.
func (s *SuffixedSet) Cached() int { return s.icons.Len() }

func (s *SuffixedSet) names(ctx context.Context, suffix string) ([]string, error) {
	return s.indexes.GetOrLoad(suffix, func() ([]string, error) {
		return s.loadIndex(context.WithoutCancel(ctx), suffix)
	})
}

// pairKey joins suffix and name with a byte that can't appear in either.
func pairKey(suffix, name string) string {
	return suffix + "\x00" + name
}

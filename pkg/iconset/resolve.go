package iconset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/iconkit/pkg/icon"
	"github.com/dmitrymomot/iconkit/pkg/logger"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

// Provider is the lookup contract shared by Set and SuffixedSet.
type Provider interface {
	Namespace() string
	Suffixes() []string
	DefaultSuffix() string
	IconNames(ctx context.Context) ([]string, error)
	Get(ctx context.Context, name string) (*icon.Definition, error)
	TryGet(ctx context.Context, name string) (*icon.Definition, bool, error)
	PreloadAll(ctx context.Context) (map[string]*icon.Definition, error)
}

// VariantProvider is implemented by sets with more than one style.
type VariantProvider interface {
	Provider
	GetIconNames(ctx context.Context, suffix string) ([]string, error)
	GetVariant(ctx context.Context, suffix, name string) (*icon.Definition, error)
	TryGetVariant(ctx context.Context, suffix, name string) (*icon.Definition, bool, error)
	PreloadVariant(ctx context.Context, suffix string) (map[string]*icon.Definition, error)
}

var (
	_ Provider        = (*Set)(nil)
	_ VariantProvider = (*SuffixedSet)(nil)
)

// iconKey builds "<ns>.Icons.<suffix>.<name>.svg". Hyphens in the suffix turn
// into underscores because packaging renames variant folders that way.
func iconKey(namespace, suffix, name string) string {
	if suffix == "" {
		return namespace + ".Icons." + name + ".svg"
	}
	return namespace + ".Icons." + strings.ReplaceAll(suffix, "-", "_") + "." + name + ".svg"
}

// indexKey builds "<ns>.Icons.<suffix>.index.json". Index files sit directly in
// the Icons folder, so their names keep hyphens.
func indexKey(namespace, suffix string) string {
	if suffix == "" {
		return namespace + ".Icons.index.json"
	}
	return namespace + ".Icons." + suffix + ".index.json"
}

// foldKey normalizes names for case-insensitive cache keys and key matching.
func foldKey(name string) string {
	return cases.Fold().String(name)
}

// resolver reads icon markup and indexes from a store.
type resolver struct {
	store     resource.Store
	namespace string
	log       *slog.Logger
}

// readIcon reads key, falling back to the first store key equal to it ignoring
// case. Case is compared with foldKey, the same rule the icon cache uses.
// found is false when neither exists.
func (r *resolver) readIcon(ctx context.Context, key string) (svg string, found bool, err error) {
	svg, err = r.store.ReadText(ctx, key)
	if err == nil {
		return svg, true, nil
	}
	if !errors.Is(err, resource.ErrNotFound) {
		return "", false, err
	}

	keys, err := r.store.Keys(ctx)
	if err != nil {
		return "", false, err
	}

	target := foldKey(key)
	for _, k := range keys {
		if foldKey(k) != target {
			continue
		}
		svg, err = r.store.ReadText(ctx, k)
		if errors.Is(err, resource.ErrNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		r.log.DebugContext(ctx, "icon resolved ignoring case",
			logger.Namespace(r.namespace),
			logger.ResourceKey(key),
			slog.String("matched_key", k),
		)
		return svg, true, nil
	}

	return "", false, nil
}

// loadIndex reads and decodes an index resource.
func (r *resolver) loadIndex(ctx context.Context, suffix string) ([]string, error) {
	key := indexKey(r.namespace, suffix)

	text, err := r.store.ReadText(ctx, key)
	if errors.Is(err, resource.ErrNotFound) {
		return nil, fmt.Errorf("%w: resource %s", ErrIndexNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", key, err)
	}

	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: resource %s", ErrIndexDecode, key), err)
	}
	if names == nil {
		return nil, fmt.Errorf("%w: resource %s holds null", ErrIndexDecode, key)
	}

	r.log.DebugContext(ctx, "icon index loaded",
		logger.Namespace(r.namespace),
		logger.Variant(suffix),
		slog.Int("icons", len(names)),
	)
	return names, nil
}

// preload resolves every name and collects the results. Names that differ
// only by letter case share one entry keyed by the first spelling.
func preload(names []string, resolve func(name string) (*icon.Definition, error)) (map[string]*icon.Definition, error) {
	result := make(map[string]*icon.Definition, len(names))
	spelling := make(map[string]string, len(names))
	for _, name := range names {
		def, err := resolve(name)
		if err != nil {
			return nil, err
		}
		folded := foldKey(name)
		if first, ok := spelling[folded]; ok {
			result[first] = def
			continue
		}
		spelling[folded] = name
		result[name] = def
	}
	return result, nil
}

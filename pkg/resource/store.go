package resource

import (
	"context"
	"maps"
	"path"
	"slices"
	"strings"
)

// Store is a read-only, key-addressable source of icon indexes and icon markup.
// Implementations must be safe for concurrent use.
type Store interface {
	// ReadText returns the full content stored under key.
	// A missing key is reported with an error matching ErrNotFound.
	ReadText(ctx context.Context, key string) (string, error)
	// Keys enumerates every key the store can serve.
	// It may be expensive; icon sets only call it after an exact read misses.
	Keys(ctx context.Context) ([]string, error)
}

// ManifestKey converts a slash separated asset path into a resource key.
// Path separators become dots and hyphens in directory names become
// underscores, while the file name is kept as-is:
//
//	heroicons/Icons/mini-solid/arrow-up.svg -> heroicons.Icons.mini_solid.arrow-up.svg
//	heroicons/Icons/mini-solid.index.json   -> heroicons.Icons.mini-solid.index.json
func ManifestKey(p string) string {
	p = strings.Trim(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")
	if p == "" || p == "." {
		return ""
	}

	parts := strings.Split(p, "/")
	for i := range len(parts) - 1 {
		parts[i] = strings.ReplaceAll(parts[i], "-", "_")
	}
	return strings.Join(parts, ".")
}

// manifest maps resource keys to backend paths.
type manifest map[string]string

// newManifest builds a manifest from backend paths. relative turns a backend
// path into the asset path ManifestKey expects. When two paths produce the
// same key the first one wins.
func newManifest(paths []string, relative func(string) string) manifest {
	m := make(manifest, len(paths))
	for _, p := range paths {
		key := ManifestKey(relative(p))
		if key == "" {
			continue
		}
		if _, exists := m[key]; !exists {
			m[key] = p
		}
	}
	return m
}

func (m manifest) keys() []string {
	return slices.Sorted(maps.Keys(m))
}

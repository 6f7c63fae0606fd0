package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/iconkit/pkg/memo"
)

// FSStore serves resources from an fs.FS such as an embed.FS or os.DirFS.
// Keys are derived from file paths with ManifestKey; the manifest is built
// on first use and kept for the lifetime of the store, so the underlying
// file system is expected not to change.
type FSStore struct {
	fsys     fs.FS
	manifest memo.Value[manifest]
}

// NewFSStore creates a store over fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// NewDirStore creates a store over a local directory.
// dir is resolved to an absolute path and must exist.
func NewDirStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, ErrInvalidConfig
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToListResources, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	return NewFSStore(os.DirFS(absDir)), nil
}

// ReadText reads the file registered under key.
func (s *FSStore) ReadText(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m, err := s.load()
	if err != nil {
		return "", err
	}

	p, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrFailedToReadResource, key, err)
	}

	return string(data), nil
}

// Keys returns every manifest key in lexical order.
func (s *FSStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := s.load()
	if err != nil {
		return nil, err
	}
	return m.keys(), nil
}

func (s *FSStore) load() (manifest, error) {
	return s.manifest.Get(func() (manifest, error) {
		var paths []string
		err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				paths = append(paths, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToListResources, err)
		}
		return newManifest(paths, func(p string) string { return p }), nil
	})
}

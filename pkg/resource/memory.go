package resource

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// MemoryStore serves resources from an in-memory map of key to content.
// It is immutable after construction.
type MemoryStore struct {
	items map[string]string
}

// NewMemoryStore copies items into a new store.
func NewMemoryStore(items map[string]string) *MemoryStore {
	return &MemoryStore{items: maps.Clone(items)}
}

// ReadText returns the content stored under key.
func (s *MemoryStore) ReadText(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, ok := s.items[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return text, nil
}

// Keys returns all keys in lexical order.
func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(s.items)), nil
}

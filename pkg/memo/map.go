package memo

import (
	"maps"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Map is a concurrent memoizing map keyed by string.
type Map[V any] struct {
	mu    sync.RWMutex
	items map[string]V
	group singleflight.Group
}

// Get returns a stored value without loading.
func (m *Map[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// GetOrLoad returns the stored value for key, running load when there is none.
// Concurrent callers for the same key share a single load.
func (m *Map[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		// A flight for key may have finished between the miss above and Do.
		if v, ok := m.Get(key); ok {
			return v, nil
		}

		v, err := load()
		if err != nil {
			return nil, err
		}

		// Published before the flight ends so later callers never reload.
		m.mu.Lock()
		if m.items == nil {
			m.items = make(map[string]V)
		}
		m.items[key] = v
		m.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Len returns the number of stored values.
func (m *Map[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Snapshot returns a copy of all stored values.
func (m *Map[V]) Snapshot() map[string]V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.items == nil {
		return make(map[string]V)
	}
	return maps.Clone(m.items)
}

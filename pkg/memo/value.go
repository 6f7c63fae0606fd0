package memo

import "sync"

// Value is a lazily computed, then immutable, single value.
type Value[T any] struct {
	mu   sync.RWMutex
	done bool
	v    T
}

// Get returns the computed value, running load if it has not succeeded yet.
// Concurrent callers block until the running load finishes.
func (c *Value[T]) Get(load func() (T, error)) (T, error) {
	c.mu.RLock()
	if c.done {
		v := c.v
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done {
		return c.v, nil
	}

	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	c.v, c.done = v, true
	return v, nil
}

// Loaded reports whether a load has succeeded.
func (c *Value[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done
}

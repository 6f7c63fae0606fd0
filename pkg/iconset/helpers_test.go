package iconset_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrymomot/iconkit/pkg/resource"
)

// countingStore records every read so tests can assert how often a key was hit.
type countingStore struct {
	next  resource.Store
	delay time.Duration

	mu        sync.Mutex
	reads     map[string]int
	keysCalls int
}

func newCountingStore(items map[string]string) *countingStore {
	return &countingStore{
		next:  resource.NewMemoryStore(items),
		reads: make(map[string]int),
	}
}

func (s *countingStore) ReadText(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	s.reads[key]++
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.next.ReadText(ctx, key)
}

func (s *countingStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	s.keysCalls++
	s.mu.Unlock()
	return s.next.Keys(ctx)
}

func (s *countingStore) Reads(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[key]
}

func (s *countingStore) TotalReads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.reads {
		total += n
	}
	return total
}

func (s *countingStore) KeysCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keysCalls
}

// failingStore fails every operation with err.
type failingStore struct{ err error }

func (s failingStore) ReadText(context.Context, string) (string, error) { return "", s.err }
func (s failingStore) Keys(context.Context) ([]string, error)           { return nil, s.err }

var errDisk = errors.New("disk on fire")

func svg(id string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" id="` + id + `"/>`
}

package resource

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore serves resources kept in Redis as plain string values under
// "<prefix><resource key>". Unlike the file and S3 stores it reflects writes
// made after construction, which makes it a good fit for sharing one icon
// bundle between several processes.
type RedisStore struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
}

// RedisOption configures RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix namespaces every key. Defaults to "icons:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithScanBatchSize sets the SCAN COUNT hint used by Keys.
func WithScanBatchSize(n int64) RedisOption {
	return func(s *RedisStore) {
		if n > 0 {
			s.scanBatchSize = n
		}
	}
}

// NewRedisStore creates a store on top of an existing client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		db:            client,
		prefix:        "icons:",
		scanBatchSize: 1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReadText returns the value stored under key.
func (s *RedisStore) ReadText(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFailedToReadResource, key, err)
	}
	return val, nil
}

// Keys scans all keys under the prefix and returns them without it, sorted.
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, s.scanBatchSize)
	var cursor uint64
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.prefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToListResources, err)
		}
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, s.prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	// SCAN may return a key more than once.
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// Put stores content under key.
func (s *RedisStore) Put(ctx context.Context, key, text string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := s.db.Set(ctx, s.prefix+key, text, 0).Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFailedToWriteResource, key, err)
	}
	return nil
}

// Seed copies every resource from src, returning the number of keys written.
func (s *RedisStore) Seed(ctx context.Context, src Store) (int, error) {
	keys, err := src.Keys(ctx)
	if err != nil {
		return 0, err
	}

	pipe := s.db.Pipeline()
	for _, key := range keys {
		text, err := src.ReadText(ctx, key)
		if err != nil {
			return 0, err
		}
		pipe.Set(ctx, s.prefix+key, text, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedToWriteResource, err)
	}

	return len(keys), nil
}

package resource_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/iconkit/pkg/resource"
)

func setupTestRedis(t *testing.T, opts ...resource.RedisOption) (*resource.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return resource.NewRedisStore(client, opts...), mr
}

func TestRedisStore_ReadText(t *testing.T) {
	t.Parallel()
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("icons:core.Icons.home.svg", "<svg home/>"))

	text, err := store.ReadText(ctx, "core.Icons.home.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg home/>", text)

	_, err = store.ReadText(ctx, "core.Icons.missing.svg")
	assert.ErrorIs(t, err, resource.ErrNotFound)

	_, err = store.ReadText(ctx, "")
	assert.ErrorIs(t, err, resource.ErrInvalidKey)
}

func TestRedisStore_Keys(t *testing.T) {
	t.Parallel()
	store, mr := setupTestRedis(t, resource.WithRedisPrefix("ik:"), resource.WithScanBatchSize(2))

	require.NoError(t, mr.Set("ik:b.svg", "b"))
	require.NoError(t, mr.Set("ik:a.svg", "a"))
	require.NoError(t, mr.Set("ik:c.svg", "c"))
	require.NoError(t, mr.Set("other:d.svg", "d"))

	keys, err := store.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.svg", "b.svg", "c.svg"}, keys)
}

func TestRedisStore_PutAndSeed(t *testing.T) {
	t.Parallel()
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "x.svg", "<svg x/>"))
	got, err := mr.Get("icons:x.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg x/>", got)

	assert.ErrorIs(t, store.Put(ctx, "", "v"), resource.ErrInvalidKey)

	src := resource.NewMemoryStore(map[string]string{
		"core.Icons.index.json": `["home"]`,
		"core.Icons.home.svg":   "<svg home/>",
	})
	n, err := store.Seed(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	text, err := store.ReadText(ctx, "core.Icons.index.json")
	require.NoError(t, err)
	assert.Equal(t, `["home"]`, text)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"core.Icons.home.svg", "core.Icons.index.json", "x.svg"}, keys)
}

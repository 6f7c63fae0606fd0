package iconset_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/iconkit/pkg/icon"
	"github.com/dmitrymomot/iconkit/pkg/iconset"
	"github.com/dmitrymomot/iconkit/pkg/logger"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

func coreStore() *countingStore {
	return newCountingStore(map[string]string{
		"core.Icons.index.json":    `["home","user","ArrowUp","broken"]`,
		"core.Icons.home.svg":      svg("home"),
		"core.Icons.user.svg":      svg("user"),
		"core.Icons.arrowup.svg":   svg("arrowup"),
		"core.Icons.unlisted.svg":  svg("unlisted"),
		"other.Icons.home.svg":     svg("other-home"),
		"other.Icons.index.json":   `{"home": true}`,
		"nulled.Icons.index.json":  `null`,
		"numbers.Icons.index.json": `[1, 2, 3]`,
		"garbage.Icons.index.json": `not json`,
		"empty.Icons.index.json":   `[]`,
	})
}

func TestSet_IconNames(t *testing.T) {
	t.Parallel()

	t.Run("reads the index once", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "core")
		ctx := context.Background()

		for range 3 {
			names, err := set.IconNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"home", "user", "ArrowUp", "broken"}, names)
		}
		assert.Equal(t, 1, store.Reads("core.Icons.index.json"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		set := iconset.New(coreStore(), "core")
		names, err := set.IconNames(context.Background())
		require.NoError(t, err)
		names[0] = "mutated"

		names, err = set.IconNames(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "home", names[0])
	})

	t.Run("empty index", func(t *testing.T) {
		t.Parallel()
		names, err := iconset.New(coreStore(), "empty").IconNames(context.Background())
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("index errors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			namespace string
			want      error
		}{
			{"missing", iconset.ErrIndexNotFound},
			{"other", iconset.ErrIndexDecode},
			{"nulled", iconset.ErrIndexDecode},
			{"numbers", iconset.ErrIndexDecode},
			{"garbage", iconset.ErrIndexDecode},
		}
		for _, tt := range tests {
			_, err := iconset.New(coreStore(), tt.namespace).IconNames(context.Background())
			assert.ErrorIs(t, err, tt.want, tt.namespace)
			assert.Contains(t, err.Error(), tt.namespace+".Icons.index.json")
		}
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		t.Parallel()
		_, err := iconset.New(failingStore{err: errDisk}, "core").IconNames(context.Background())
		assert.ErrorIs(t, err, errDisk)
		assert.NotErrorIs(t, err, iconset.ErrIndexNotFound)
	})

	t.Run("failed index load is retried", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "missing")
		_, err := set.IconNames(context.Background())
		require.Error(t, err)
		_, err = set.IconNames(context.Background())
		require.Error(t, err)
		assert.Equal(t, 2, store.Reads("missing.Icons.index.json"))
	})
}

func TestSet_Get(t *testing.T) {
	t.Parallel()

	t.Run("resolves and caches", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "core")
		ctx := context.Background()

		first, err := set.Get(ctx, "home")
		require.NoError(t, err)
		second, err := set.Get(ctx, "home")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, "home", first.Name())
		assert.Equal(t, svg("home"), first.SVG())
		assert.Equal(t, 1, store.Reads("core.Icons.home.svg"))
		assert.Equal(t, 1, set.Cached())
	})

	t.Run("cache ignores case", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "core")
		ctx := context.Background()

		lower, err := set.Get(ctx, "user")
		require.NoError(t, err)
		upper, err := set.Get(ctx, "USER")
		require.NoError(t, err)

		assert.Same(t, lower, upper)
		assert.Equal(t, 0, store.Reads("core.Icons.USER.svg"))
	})

	t.Run("does not consult the index", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "core")

		def, err := set.Get(context.Background(), "unlisted")
		require.NoError(t, err)
		assert.Equal(t, svg("unlisted"), def.SVG())
		assert.Equal(t, 0, store.Reads("core.Icons.index.json"))
	})

	t.Run("exact hit never lists keys", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		_, err := iconset.New(store, "core").Get(context.Background(), "home")
		require.NoError(t, err)
		assert.Equal(t, 0, store.KeysCalls())
	})

	t.Run("falls back to a case-insensitive key", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "core")

		def, err := set.Get(context.Background(), "ArrowUp")
		require.NoError(t, err)
		assert.Equal(t, "ArrowUp", def.Name())
		assert.Equal(t, svg("arrowup"), def.SVG())
		assert.Equal(t, 1, store.Reads("core.Icons.ArrowUp.svg"))
		assert.Equal(t, 1, store.Reads("core.Icons.arrowup.svg"))
		assert.Equal(t, 1, store.KeysCalls())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		set := iconset.New(coreStore(), "core")

		def, err := set.Get(context.Background(), "ghost")
		assert.Nil(t, def)
		require.ErrorIs(t, err, iconset.ErrIconNotFound)
		assert.Contains(t, err.Error(), `"ghost"`)
		assert.Contains(t, err.Error(), "core.Icons.ghost.svg")
		assert.Equal(t, 0, set.Cached())
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		t.Parallel()
		_, err := iconset.New(failingStore{err: errDisk}, "core").Get(context.Background(), "home")
		assert.ErrorIs(t, err, errDisk)
		assert.NotErrorIs(t, err, iconset.ErrIconNotFound)
	})

	t.Run("GetOrLoad is Get", func(t *testing.T) {
		t.Parallel()
		set := iconset.New(coreStore(), "core")
		a, err := set.GetOrLoad(context.Background(), "home")
		require.NoError(t, err)
		b, err := set.Get(context.Background(), "home")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})
}

func TestSet_ConcurrentGetReadsOnce(t *testing.T) {
	t.Parallel()

	store := coreStore()
	store.delay = 20 * time.Millisecond
	set := iconset.New(store, "core")

	const n = 50
	start := make(chan struct{})
	results := make([]*icon.Definition, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			def, err := set.Get(context.Background(), "home")
			assert.NoError(t, err)
			results[i] = def
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, store.Reads("core.Icons.home.svg"))
	for _, def := range results {
		require.NotNil(t, def)
		assert.Same(t, results[0], def)
	}
}

func TestSet_ConcurrentGetSurvivesCanceledCaller(t *testing.T) {
	t.Parallel()

	store := coreStore()
	store.delay = 100 * time.Millisecond
	set := iconset.New(store, "core")

	ctxA, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		wg         sync.WaitGroup
		defA, defB *icon.Definition
		errA, errB error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defA, errA = set.Get(ctxA, "home")
	}()

	require.Eventually(t, func() bool {
		return store.Reads("core.Icons.home.svg") == 1
	}, time.Second, time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defB, errB = set.Get(context.Background(), "home")
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Same(t, defA, defB)
	assert.Equal(t, 1, store.Reads("core.Icons.home.svg"))
}

func TestSet_FoldingIsOrderIndependent(t *testing.T) {
	t.Parallel()

	items := map[string]string{
		"ns.Icons.straße.svg": svg("strasse"),
	}

	fresh := iconset.New(newCountingStore(items), "ns")
	def, err := fresh.Get(context.Background(), "STRASSE")
	require.NoError(t, err)
	assert.Equal(t, "STRASSE", def.Name())
	assert.Contains(t, def.SVG(), `id="strasse"`)

	warm := iconset.New(newCountingStore(items), "ns")
	first, err := warm.Get(context.Background(), "straße")
	require.NoError(t, err)
	second, err := warm.Get(context.Background(), "STRASSE")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSet_TryGet(t *testing.T) {
	t.Parallel()

	t.Run("every indexed name with a resource is found", func(t *testing.T) {
		t.Parallel()
		set := iconset.New(coreStore(), "core")
		ctx := context.Background()

		for _, name := range []string{"home", "user", "ArrowUp"} {
			def, ok, err := set.TryGet(ctx, name)
			require.NoError(t, err, name)
			assert.True(t, ok, name)
			assert.Contains(t, def.SVG(), "<svg")
		}
	})

	t.Run("name absent from index is not resolved", func(t *testing.T) {
		t.Parallel()
		store := coreStore()
		set := iconset.New(store, "core")

		def, ok, err := set.TryGet(context.Background(), "ghost")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, def)
		assert.Equal(t, 1, store.TotalReads(), "only the index is read")
		assert.Equal(t, 0, store.KeysCalls())
	})

	t.Run("membership is case-sensitive", func(t *testing.T) {
		t.Parallel()
		_, ok, err := iconset.New(coreStore(), "core").TryGet(context.Background(), "HOME")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	// Get and TryGet take different paths: Get only needs a resource,
	// TryGet first needs the index to list the name.
	t.Run("index and resources can disagree", func(t *testing.T) {
		t.Parallel()
		set := iconset.New(coreStore(), "core")
		ctx := context.Background()

		// Resource exists, index does not list it.
		_, err := set.Get(ctx, "unlisted")
		require.NoError(t, err)
		_, ok, err := set.TryGet(ctx, "unlisted")
		require.NoError(t, err)
		assert.False(t, ok)

		// Index lists it, resource is missing: TryGet fails instead of reporting absence.
		_, ok, err = set.TryGet(ctx, "broken")
		assert.False(t, ok)
		assert.ErrorIs(t, err, iconset.ErrIconNotFound)

		_, err = set.Get(ctx, "ghost")
		assert.ErrorIs(t, err, iconset.ErrIconNotFound)
		_, ok, err = set.TryGet(ctx, "ghost")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("index failure", func(t *testing.T) {
		t.Parallel()
		_, ok, err := iconset.New(coreStore(), "missing").TryGet(context.Background(), "home")
		assert.False(t, ok)
		assert.ErrorIs(t, err, iconset.ErrIndexNotFound)
	})

	t.Run("shares the Get cache", func(t *testing.T) {
		t.Parallel()
		set := iconset.New(coreStore(), "core")
		viaGet, err := set.Get(context.Background(), "home")
		require.NoError(t, err)
		viaTry, ok, err := set.TryGet(context.Background(), "home")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Same(t, viaGet, viaTry)
	})
}

func TestSet_PreloadAll(t *testing.T) {
	t.Parallel()

	t.Run("resolves every indexed icon", func(t *testing.T) {
		t.Parallel()
		store := newCountingStore(map[string]string{
			"core.Icons.index.json": `["home","user"]`,
			"core.Icons.home.svg":   svg("home"),
			"core.Icons.user.svg":   svg("user"),
		})
		set := iconset.New(store, "core")
		ctx := context.Background()

		all, err := set.PreloadAll(ctx)
		require.NoError(t, err)

		names, err := set.IconNames(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, names, keysOf(all))

		for _, name := range names {
			def, err := set.Get(ctx, name)
			require.NoError(t, err)
			assert.Same(t, def, all[name])
		}
		assert.Equal(t, 1, store.Reads("core.Icons.home.svg"))
	})

	t.Run("missing resource fails the whole preload", func(t *testing.T) {
		t.Parallel()
		all, err := iconset.New(coreStore(), "core").PreloadAll(context.Background())
		assert.Nil(t, all)
		assert.ErrorIs(t, err, iconset.ErrIconNotFound)
	})
}

func TestSet_Metadata(t *testing.T) {
	t.Parallel()
	set := iconset.New(resource.NewMemoryStore(nil), "core")
	assert.Equal(t, "core", set.Namespace())
	assert.Empty(t, set.Suffixes())
	assert.NotNil(t, set.Suffixes())
	assert.Equal(t, "", set.DefaultSuffix())
}

func TestSet_LogsCaseInsensitiveMatch(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	set := iconset.New(coreStore(), "core", iconset.WithLogger(log))

	_, err := set.Get(context.Background(), "ArrowUp")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "icon resolved ignoring case")
	assert.Contains(t, out, `"resource_key":"core.Icons.ArrowUp.svg"`)
	assert.Contains(t, out, `"matched_key":"core.Icons.arrowup.svg"`)
}

func keysOf(m map[string]*icon.Definition) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

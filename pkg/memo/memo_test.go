package memo_test

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/iconkit/pkg/memo"
)

func TestMap_GetOrLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads once and stores", func(t *testing.T) {
		t.Parallel()
		var m memo.Map[string]
		var calls int

		for range 3 {
			v, err := m.GetOrLoad("a", func() (string, error) {
				calls++
				return "value", nil
			})
			require.NoError(t, err)
			assert.Equal(t, "value", v)
		}

		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, m.Len())

		v, ok := m.Get("a")
		assert.True(t, ok)
		assert.Equal(t, "value", v)
	})

	t.Run("errors are not stored", func(t *testing.T) {
		t.Parallel()
		var m memo.Map[int]
		errBoom := errors.New("boom")

		_, err := m.GetOrLoad("k", func() (int, error) { return 0, errBoom })
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 0, m.Len())

		v, err := m.GetOrLoad("k", func() (int, error) { return 7, nil })
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		var m memo.Map[string]
		for i := range 5 {
			key := strconv.Itoa(i)
			v, err := m.GetOrLoad(key, func() (string, error) { return "v" + key, nil })
			require.NoError(t, err)
			assert.Equal(t, "v"+key, v)
		}
		snap := m.Snapshot()
		assert.Len(t, snap, 5)
		assert.Equal(t, "v3", snap["3"])
	})

	t.Run("snapshot of empty map", func(t *testing.T) {
		t.Parallel()
		var m memo.Map[string]
		assert.NotNil(t, m.Snapshot())
		assert.Empty(t, m.Snapshot())
	})
}

func TestMap_ConcurrentLoadRunsOnce(t *testing.T) {
	t.Parallel()

	var m memo.Map[*int]
	var calls atomic.Int32
	start := make(chan struct{})

	const n = 32
	results := make([]*int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			v, err := m.GetOrLoad("shared", func() (*int, error) {
				calls.Add(1)
				time.Sleep(20 * time.Millisecond)
				x := 42
				return &x, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("computes once", func(t *testing.T) {
		t.Parallel()
		var v memo.Value[[]string]
		var calls atomic.Int32
		load := func() ([]string, error) {
			calls.Add(1)
			return []string{"a", "b"}, nil
		}

		assert.False(t, v.Loaded())

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := v.Get(load)
				assert.NoError(t, err)
				assert.Equal(t, []string{"a", "b"}, got)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
		assert.True(t, v.Loaded())
	})

	t.Run("retries after failure", func(t *testing.T) {
		t.Parallel()
		var v memo.Value[int]
		errBoom := errors.New("boom")

		_, err := v.Get(func() (int, error) { return 0, errBoom })
		require.ErrorIs(t, err, errBoom)
		assert.False(t, v.Loaded())

		got, err := v.Get(func() (int, error) { return 3, nil })
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})
}

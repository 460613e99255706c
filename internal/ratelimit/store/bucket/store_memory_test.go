package bucket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oirla/pkg/requestcontext"
)

var start = time.Date(2030, 3, 1, 20, 0, 0, 0, time.UTC)

func at(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

func TestInMemoryBucketStore_Allow(t *testing.T) {
	store := NewInMemoryBucketStore()

	t.Run("requests up to the limit are allowed", func(t *testing.T) {
		for i := range 3 {
			res, err := store.Allow(at(start.Add(time.Duration(i)*time.Second)), "ip:a", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, 3, res.Limit)
			assert.Equal(t, 2-i, res.Remaining)
			assert.Equal(t, start.Add(time.Minute), res.ResetAt)
		}
	})

	t.Run("request over the limit is denied until the oldest expires", func(t *testing.T) {
		res, err := store.Allow(at(start.Add(10*time.Second)), "ip:a", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Zero(t, res.Remaining)
		assert.Equal(t, start.Add(time.Minute), res.ResetAt)
		assert.Equal(t, 50, res.RetryAfter)
	})

	t.Run("window slides past the first request", func(t *testing.T) {
		res, err := store.Allow(at(start.Add(time.Minute)), "ip:a", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Zero(t, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		res, err := store.Allow(at(start.Add(10*time.Second)), "ip:b", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.Remaining)
	})
}

func TestInMemoryBucketStore_RejectsInvalidInput(t *testing.T) {
	store := NewInMemoryBucketStore()
	ctx := context.Background()

	_, err := store.Allow(ctx, "", 1, time.Minute)
	assert.Error(t, err)
	_, err = store.Allow(ctx, "ip:a", 0, time.Minute)
	assert.Error(t, err)
	_, err = store.Allow(ctx, "ip:a", 1, 0)
	assert.Error(t, err)
}

func TestInMemoryBucketStore_ConcurrentCallersShareTheLimit(t *testing.T) {
	store := NewInMemoryBucketStore()
	ctx := at(start)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := store.Allow(ctx, "ip:shared", 20, time.Minute)
			if err == nil && res.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, allowed)
}

func TestInMemoryBucketStore_Sweep(t *testing.T) {
	store := NewInMemoryBucketStore()
	_, err := store.Allow(at(start), "ip:old", 5, time.Minute)
	require.NoError(t, err)
	_, err = store.Allow(at(start.Add(50*time.Second)), "ip:fresh", 5, time.Minute)
	require.NoError(t, err)

	removed, err := store.Sweep(context.Background(), start.Add(70*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, store.buckets, 1)
	assert.Contains(t, store.buckets, "ip:fresh")
}

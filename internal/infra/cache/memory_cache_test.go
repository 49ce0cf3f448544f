package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"catalog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDel(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	// Returned slices are copies.
	got[0] = 'x'
	again, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again)

	require.NoError(t, c.Del(ctx, "k", "unknown"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "ttl", []byte("1"), time.Hour))
	require.NoError(t, c.Set(ctx, "forever", []byte("2"), 0))

	now = now.Add(59 * time.Minute)
	_, err := c.Get(ctx, "ttl")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "ttl")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	now = now.Add(24 * time.Hour)
	_, err = c.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "shared", []byte("value"), time.Minute)
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get(ctx, "shared")
		}()
		go func() {
			defer wg.Done()
			_ = c.Del(ctx, "shared")
		}()
	}
	wg.Wait()
}

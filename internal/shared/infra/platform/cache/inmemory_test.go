package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cached struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func TestInMemoryCache_SetGetDelete(t *testing.T) {
	// Arrange
	c := NewInMemoryCache(time.Minute, time.Minute)
	defer c.Stop()
	ctx := context.Background()

	// Act
	require.NoError(t, c.Set(ctx, "coin:1", cached{Name: "Dime", Year: 1968}, 0))
	var got cached
	hit, err := c.Get(ctx, "coin:1", &got)

	// Assert
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cached{Name: "Dime", Year: 1968}, got)

	require.NoError(t, c.Delete(ctx, "coin:1"))
	hit, err = c.Get(ctx, "coin:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInMemoryCache_Expiration(t *testing.T) {
	c := NewInMemoryCache(10*time.Millisecond, 0)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, 0))
	time.Sleep(20 * time.Millisecond)

	var v int
	hit, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInMemoryCache_ExpiredEntriesAreEvicted(t *testing.T) {
	c := NewInMemoryCache(time.Minute, 0)
	defer c.Stop()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", 1, 1))
	require.NoError(t, c.Set(ctx, "long", 2, 0))
	now = now.Add(2 * time.Second)

	var v int
	hit, err := c.Get(ctx, "short", &v)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, c.Len())

	now = now.Add(time.Hour)
	c.purge()
	assert.Zero(t, c.Len())
}

func TestInMemoryCache_DecodeError(t *testing.T) {
	c := NewInMemoryCache(time.Minute, 0)
	defer c.Stop()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "text", 0))

	var n int
	hit, err := c.Get(ctx, "k", &n)

	assert.Error(t, err)
	assert.False(t, hit)
}

func TestInMemoryCache_StopEndsPurge(t *testing.T) {
	for _, every := range []time.Duration{0, time.Millisecond} {
		c := NewInMemoryCache(time.Minute, every)

		c.Stop()
		c.Stop()

		select {
		case <-c.Done():
		case <-time.After(time.Second):
			t.Fatalf("purge still running after Stop (every=%s)", every)
		}
	}
}

func TestTTLOrDefault(t *testing.T) {
	assert.Equal(t, 3*time.Second, ttlOrDefault(3, time.Minute))
	assert.Equal(t, time.Minute, ttlOrDefault(0, time.Minute))
}

func TestAsyncCacheHelpers(t *testing.T) {
	c := NewInMemoryCache(time.Minute, 0)
	defer c.Stop()
	log := zap.NewNop()

	AsyncCacheSet(c, "k", "v", 0, log)
	assert.Eventually(t, func() bool {
		var s string
		hit, _ := c.Get(context.Background(), "k", &s)
		return hit && s == "v"
	}, time.Second, 5*time.Millisecond)

	AsyncCacheDelete(c, "k", log)
	assert.Eventually(t, func() bool {
		var s string
		hit, _ := c.Get(context.Background(), "k", &s)
		return !hit
	}, time.Second, 5*time.Millisecond)

	// Una caché nil no hace nada.
	AsyncCacheSet(nil, "k", "v", 0, log)
	AsyncCacheDelete(nil, "k", log)
}

package xcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewFromConfig[cachedValue](Config{Mode: ModeMemory})

	_, err := cache.Get(ctx, "missing")
	require.Error(t, err)

	require.NoError(t, cache.Set(ctx, "k", cachedValue{ID: 1, Name: "one"}))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, cachedValue{ID: 1, Name: "one"}, got)

	require.NoError(t, cache.Delete(ctx, "k"))

	_, err = cache.Get(ctx, "k")
	require.Error(t, err)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cache := NewFromConfig[cachedValue](Config{
		Mode: ModeRedis,
		Redis: RedisConfig{
			Addr:       mr.Addr(),
			Expiration: time.Minute,
		},
	})

	require.NoError(t, cache.Set(ctx, "k", cachedValue{ID: 2, Name: "two"}))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, cachedValue{ID: 2, Name: "two"}, got)

	require.NoError(t, cache.Delete(ctx, "k"))

	_, err = cache.Get(ctx, "k")
	require.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	cache := NewFromConfig[cachedValue](Config{})

	require.NoError(t, cache.Set(ctx, "k", cachedValue{ID: 3}))

	_, err := cache.Get(ctx, "k")
	require.Error(t, err)
}

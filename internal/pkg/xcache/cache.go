// Package xcache provides typed caches on top of eko/gocache with
// memory, redis and noop backends selected by config.
package xcache

import (
	"time"

	cachelib "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	gocache_store "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	redis "github.com/redis/go-redis/v9"

	redis_store "github.com/looplj/authhub/internal/pkg/xcache/redis"
)

// Cache is an alias to the gocache CacheInterface for convenience.
type Cache[T any] = cachelib.CacheInterface[T]

// NewMemory creates an in-memory cache using patrickmn/go-cache as the backend.
func NewMemory[T any](defaultExpiration, cleanupInterval time.Duration) Cache[T] {
	client := gocache.New(defaultExpiration, cleanupInterval)
	st := gocache_store.NewGoCache(client, store.WithExpiration(defaultExpiration))

	return cachelib.New[T](st)
}

// NewRedis creates a redis-backed cache.
func NewRedis[T any](client redis_store.Client, expiration time.Duration) Cache[T] {
	st := redis_store.New[T](client, store.WithExpiration(expiration))
	return cachelib.New[T](st)
}

// NewFromConfig builds a typed cache from the given Config.
// An empty or unknown mode yields a noop cache that does nothing.
func NewFromConfig[T any](cfg Config) Cache[T] {
	switch cfg.Mode {
	case ModeMemory:
		expiration := defaultIfZero(cfg.Memory.Expiration, 5*time.Minute)
		cleanup := defaultIfZero(cfg.Memory.CleanupInterval, 10*time.Minute)

		return NewMemory[T](expiration, cleanup)
	case ModeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		return NewRedis[T](client, defaultIfZero(cfg.Redis.Expiration, 5*time.Minute))
	default:
		return NewNoop[T]()
	}
}

func defaultIfZero(d, fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}

	return d
}

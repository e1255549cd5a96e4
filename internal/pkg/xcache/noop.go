package xcache

import (
	"context"

	"github.com/eko/gocache/lib/v4/store"
)

// NewNoop returns a cache that stores nothing and always misses.
func NewNoop[T any]() Cache[T] {
	return noopCache[T]{}
}

type noopCache[T any] struct{}

func (noopCache[T]) Get(ctx context.Context, key any) (T, error) {
	var zero T
	return zero, store.NotFound{}
}

func (noopCache[T]) Set(ctx context.Context, key any, object T, options ...store.Option) error {
	return nil
}

func (noopCache[T]) Delete(ctx context.Context, key any) error {
	return nil
}

func (noopCache[T]) Invalidate(ctx context.Context, options ...store.InvalidateOption) error {
	return nil
}

func (noopCache[T]) Clear(ctx context.Context) error {
	return nil
}

func (noopCache[T]) GetType() string {
	return "noop"
}

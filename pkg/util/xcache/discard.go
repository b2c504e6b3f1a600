package xcache

import (
	"context"

	"github.com/wuxler/imgref/pkg/util/xgeneric"
)

// NewDiscard returns a cache which stores nothing. Get always calls the
// loader.
func NewDiscard[T any]() Cache[T] {
	return discardCacheImpl[T]{}
}

type discardCacheImpl[T any] struct{}

// Get returns the loaded value of the key.
func (s discardCacheImpl[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, bool) {
	o := MakeOptions(options...)
	if v, ok := o.Loader(ctx, key); ok {
		return v, true
	}
	return xgeneric.ZeroValue[T](), false
}

// Set does nothing.
func (s discardCacheImpl[T]) Set(_ context.Context, _ string, _ T, _ ...Option[T]) {}

// Delete does nothing.
func (s discardCacheImpl[T]) Delete(_ context.Context, _ string) {}

package xcache

import (
	"context"
	"time"

	"github.com/maypok86/otter"
	"golang.org/x/sync/singleflight"

	"github.com/wuxler/imgref/pkg/util/xgeneric"
)

const (
	// DefaultCapacity is the default maximum number of entries of a memory cache.
	DefaultCapacity = 10_000
	// DefaultTTL is the default lifetime of a memory cache entry.
	DefaultTTL = time.Hour
)

// MemoryOption configures NewMemory.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	capacity int
	ttl      time.Duration
}

// WithCapacity sets the maximum number of entries.
func WithCapacity(capacity int) MemoryOption {
	return func(o *memoryOptions) {
		o.capacity = capacity
	}
}

// WithTTL sets the lifetime of an entry.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.ttl = ttl
	}
}

// NewMemory returns a new in-memory cache backed by otter. Concurrent loads
// of the same key are collapsed into one loader call.
func NewMemory[T any](options ...MemoryOption) Cache[T] {
	o := &memoryOptions{capacity: DefaultCapacity, ttl: DefaultTTL}
	for _, apply := range options {
		apply(o)
	}

	cache, err := otter.MustBuilder[string, T](o.capacity).
		WithTTL(o.ttl).
		Build()
	if err != nil {
		panic(err)
	}
	return &memoryCacheImpl[T]{
		cache: cache,
	}
}

type memoryCacheImpl[T any] struct {
	cache     otter.Cache[string, T]
	loadGroup singleflight.Group
}

type loaded[T any] struct {
	value T
	ok    bool
}

// Get returns the value of the key.
func (s *memoryCacheImpl[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, bool) {
	if v, ok := s.cache.Get(key); ok {
		return v, true
	}
	o := MakeOptions(options...)
	//nolint:errcheck // the load function never fails
	result, _, _ := s.loadGroup.Do(key, func() (any, error) {
		value, ok := o.Loader(ctx, key)
		if ok {
			s.cache.Set(key, value)
		}
		return loaded[T]{value: value, ok: ok}, nil
	})
	l := result.(loaded[T])
	if !l.ok {
		return xgeneric.ZeroValue[T](), false
	}
	return l.value, true
}

// Set saves the value of the key.
func (s *memoryCacheImpl[T]) Set(_ context.Context, key string, value T, _ ...Option[T]) {
	s.cache.Set(key, value)
}

// Delete removes the value of the key.
func (s *memoryCacheImpl[T]) Delete(_ context.Context, key string) {
	s.cache.Delete(key)
}

package service

import (
	"context"
	"sync"
)

// lazy loads a value on the first Get and keeps it for the lifetime of the
// owner. A failed load is not kept, so the next Get tries again.
type lazy[T any] struct {
	mu     sync.Mutex
	loaded bool
	value  T
	load   func(ctx context.Context) (T, error)
}

func newLazy[T any](load func(ctx context.Context) (T, error)) *lazy[T] {
	return &lazy[T]{load: load}
}

func (l *lazy[T]) Get(ctx context.Context) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.value, nil
	}

	value, err := l.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = value
	l.loaded = true
	return value, nil
}

package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the eventual result of a callback-driven operation.
// It is completed at most once through its paired Promise.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Promise is the write side of a Future. Exactly one of Resolve or Reject
// takes effect; every later call is a no-op.
type Promise[T any] struct {
	future *Future[T]
	once   sync.Once
}

// New creates a linked Promise/Future pair. The Promise is handed to the
// code that owns the completion callback; the Future is returned to the
// caller awaiting the result.
func New[T any]() (*Promise[T], *Future[T]) {
	f := &Future[T]{done: make(chan struct{})}
	return &Promise[T]{future: f}, f
}

// Resolve completes the future successfully with the given value.
func (p *Promise[T]) Resolve(value T) {
	p.once.Do(func() {
		p.future.result = value
		close(p.future.done)
	})
}

// Reject completes the future with an error.
func (p *Promise[T]) Reject(err error) {
	p.once.Do(func() {
		p.future.err = err
		close(p.future.done)
	})
}

// Resolved returns an already-completed successful future.
// Useful for short-circuit paths that never touch the platform.
func Resolved[T any](value T) *Future[T] {
	p, f := New[T]()
	p.Resolve(value)
	return f
}

// Rejected returns an already-failed future.
func Rejected[T any](err error) *Future[T] {
	p, f := New[T]()
	p.Reject(err)
	return f
}

// Await blocks until the future completes or ctx is done. Abandoning the
// wait does not cancel the underlying operation; it keeps running and the
// future may still complete later.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for completion up to the given duration and
// returns ErrTimeout if the future is still pending when it elapses.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has completed, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the future completes.
// Useful for select statements alongside other channels.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

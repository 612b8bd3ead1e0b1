// Package deferred provides a manually settled result that can be awaited.
package deferred

import (
	"context"
	"sync"
)

// Deferred is settled at most once, either by Resolve or by Reject. Later
// settle attempts are ignored and report false.
type Deferred[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func New[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

func (d *Deferred[T]) Resolve(value T) bool {
	settled := false
	d.once.Do(func() {
		d.value = value
		close(d.done)
		settled = true
	})
	return settled
}

func (d *Deferred[T]) Reject(err error) bool {
	settled := false
	d.once.Do(func() {
		d.err = err
		close(d.done)
		settled = true
	})
	return settled
}

// Done is closed once the result is settled.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the result is settled or ctx ends. A context error does
// not settle the deferred.
func (d *Deferred[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

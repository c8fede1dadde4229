// Package eventqueue provides a bounded, closeable, ordered hand-off queue.
package eventqueue

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Push and Pop once the queue has been closed and,
// for Pop, fully drained.
var ErrClosed = errors.New("event queue closed")

// Queue is a capacity-bounded FIFO shared between one producer context and
// one consumer context. Pushing onto a full queue blocks the producer until
// the consumer drains an item. Items buffered at close time remain readable.
type Queue[T any] struct {
	items chan T
	done  chan struct{}
	once  sync.Once
}

// New constructs a queue with the given capacity.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{
		items: make(chan T, capacity),
		done:  make(chan struct{}),
	}
}

// Push enqueues an item, blocking while the queue is full. It fails with
// ErrClosed after Close and with the context error on cancellation.
func (q *Queue[T]) Push(ctx context.Context, item T) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}

	select {
	case q.items <- item:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop dequeues the next item in push order, blocking while the queue is
// empty. After Close it keeps returning buffered items until the queue is
// drained, then fails with ErrClosed.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	var zero T

	select {
	case item := <-q.items:
		return item, nil
	default:
	}

	select {
	case item := <-q.items:
		return item, nil
	case <-q.done:
		select {
		case item := <-q.items:
			return item, nil
		default:
			return zero, ErrClosed
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Len reports the number of buffered items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Close marks the queue closed. Subsequent pushes fail with ErrClosed;
// buffered items stay available to Pop. Close is idempotent.
func (q *Queue[T]) Close() {
	q.once.Do(func() {
		close(q.done)
	})
}

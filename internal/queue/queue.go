package queue

import (
	"sync"
	"sync/atomic"
)

// Queue hands buffered items to a single consumer goroutine in enqueue
// order. The zero value is unusable; construct with [New]. All methods are
// safe for concurrent use and nil-receiver safe.
type Queue[T any] struct {
	consume   func(T)
	ch        chan T
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

// New starts the consumer goroutine. consume runs on that goroutine only and
// must not call back into the queue. Buffer sizes below 1 are clamped to 1.
func New[T any](buffer int, consume func(T)) *Queue[T] {
	if buffer <= 0 {
		buffer = 1
	}

	q := &Queue[T]{
		consume: consume,
		ch:      make(chan T, buffer),
		done:    make(chan struct{}),
	}

	q.wg.Add(1)
	go q.run()

	return q
}

func (q *Queue[T]) run() {
	defer q.wg.Done()

	for {
		select {
		case item := <-q.ch:
			q.consume(item)
		case <-q.done:
			for {
				select {
				case item := <-q.ch:
					q.consume(item)
				default:
					return
				}
			}
		}
	}
}

// TryPush enqueues without blocking. A full buffer discards the item, counts
// it, and reports false; a closed queue reports false without counting.
func (q *Queue[T]) TryPush(item T) bool {
	if q == nil || q.closed.Load() {
		return false
	}

	select {
	case q.ch <- item:
		return true
	case <-q.done:
		return false
	default:
		q.dropped.Add(1)
		return false
	}
}

// Push blocks until the item is buffered, cancel fires, or the queue closes.
// A nil cancel channel never fires.
func (q *Queue[T]) Push(item T, cancel <-chan struct{}) {
	if q == nil || q.closed.Load() {
		return
	}

	select {
	case q.ch <- item:
	case <-cancel:
	case <-q.done:
	}
}

// Dropped reports how many items TryPush discarded because the buffer was
// full.
func (q *Queue[T]) Dropped() uint64 {
	if q == nil {
		return 0
	}
	return q.dropped.Load()
}

// Close stops intake, drains buffered items through consume, and waits for
// the consumer goroutine. Safe to call more than once.
func (q *Queue[T]) Close() {
	if q == nil {
		return
	}
	q.closeOnce.Do(func() {
		q.closed.Store(true)
		close(q.done)
		q.wg.Wait()
	})
}

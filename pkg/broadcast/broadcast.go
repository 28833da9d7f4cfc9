package broadcast

import (
	"context"
	"sync"
)

// Subscription receives values published to a Hub.
type Subscription[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscription[T any](bufferSize int) *Subscription[T] {
	return &Subscription[T]{
		ch: make(chan T, bufferSize),
	}
}

// C returns the channel delivering published values. The channel is closed
// when the subscription or its hub is closed.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close closes the subscription. Idempotent.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

func (s *Subscription[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

// Hub fans published values out to all active subscriptions. Publishing
// never blocks: when a subscription's buffer is full the value is dropped
// for that subscription. All methods are safe for concurrent use.
type Hub[T any] struct {
	subs       map[*Subscription[T]]struct{}
	bufferSize int
	closed     bool
	mu         sync.RWMutex
	cleanupWg  sync.WaitGroup
}

// NewHub creates a Hub whose subscriptions buffer up to bufferSize values.
// A minimum buffer of 1 is enforced so that publishing stays non-blocking.
func NewHub[T any](bufferSize int) *Hub[T] {
	return &Hub[T]{
		subs:       make(map[*Subscription[T]]struct{}),
		bufferSize: max(bufferSize, 1),
	}
}

// Subscribe creates a subscription receiving every subsequently published
// value. The subscription is cleaned up automatically when ctx is
// cancelled. On a closed hub the returned subscription is already closed.
func (h *Hub[T]) Subscribe(ctx context.Context) *Subscription[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := newSubscription[T](h.bufferSize)
	if h.closed {
		sub.Close()
		return sub
	}

	h.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			<-ctx.Done()
			h.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish delivers v to all active subscriptions without blocking.
// Subscriptions whose buffer is full miss the value and are removed.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for sub := range h.subs {
		if !sub.send(v) {
			// Removal takes the write lock, so defer it off this goroutine.
			go h.unsubscribe(sub)
		}
	}
}

// Close shuts down the hub and closes every subscription. Idempotent.
func (h *Hub[T]) Close() {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true

	for sub := range h.subs {
		sub.Close()
	}
	clear(h.subs)
	h.mu.Unlock()

	h.cleanupWg.Wait()
}

func (h *Hub[T]) unsubscribe(sub *Subscription[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs, sub)
	sub.Close()
}

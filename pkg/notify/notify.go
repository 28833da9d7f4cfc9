package notify

import "sync"

type handler[T any] struct {
	id int
	fn func(T)
}

// Signal delivers values to subscribed handlers synchronously, in
// registration order. All methods are safe for concurrent use, though
// Emit itself runs handlers on the calling goroutine.
type Signal[T any] struct {
	mu       sync.Mutex
	handlers []handler[T]
	nextID   int
}

// Subscribe registers fn to receive every emitted value and returns an
// unsubscribe function. Unsubscribing is idempotent.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Emit invokes every handler with v, in registration order, and returns
// once all handlers have run. The handler list is snapshotted first, so
// handlers may subscribe or unsubscribe without deadlocking; changes take
// effect from the next Emit.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]handler[T], len(s.handlers))
	copy(snapshot, s.handlers)
	s.mu.Unlock()

	for _, h := range snapshot {
		h.fn(v)
	}
}

// Len returns the number of active subscribers.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

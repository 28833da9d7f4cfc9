package asyncstate

import "fmt"

// stateRegistry owns the one-to-one binding between state identifiers and
// their behaviors. Locking is the owning Machine's responsibility.
type stateRegistry[S comparable] struct {
	behaviors map[S]Behavior[S]
}

func newStateRegistry[S comparable]() *stateRegistry[S] {
	return &stateRegistry[S]{
		behaviors: make(map[S]Behavior[S]),
	}
}

func (r *stateRegistry[S]) add(id S, b Behavior[S]) error {
	if b == nil {
		return fmt.Errorf("state %v: %w", id, ErrNilBehavior)
	}
	if _, exists := r.behaviors[id]; exists {
		return fmt.Errorf("state %v: %w", id, ErrDuplicateState)
	}
	r.behaviors[id] = b
	return nil
}

func (r *stateRegistry[S]) remove(id S) error {
	if _, exists := r.behaviors[id]; !exists {
		return fmt.Errorf("state %v: %w", id, ErrUnknownState)
	}
	delete(r.behaviors, id)
	return nil
}

func (r *stateRegistry[S]) removeAll() {
	clear(r.behaviors)
}

func (r *stateRegistry[S]) lookup(id S) (Behavior[S], bool) {
	b, ok := r.behaviors[id]
	return b, ok
}

func (r *stateRegistry[S]) contains(id S) bool {
	_, ok := r.behaviors[id]
	return ok
}

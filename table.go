package asyncstate

// transitionTable is the two-level lookup from (source state, event) to a
// destination state. Endpoint validation happens at registration time on
// the Machine; the table itself never re-validates, so entries referencing
// a later-removed destination are left dangling until their source is
// removed. Locking is the owning Machine's responsibility.
type transitionTable[S, E comparable] struct {
	edges map[S]map[E]S
}

func newTransitionTable[S, E comparable]() *transitionTable[S, E] {
	return &transitionTable[S, E]{
		edges: make(map[S]map[E]S),
	}
}

// set inserts or overwrites the destination for (from, event); the last
// registration wins.
func (t *transitionTable[S, E]) set(from S, event E, to S) {
	if t.edges[from] == nil {
		t.edges[from] = make(map[E]S)
	}
	t.edges[from][event] = to
}

func (t *transitionTable[S, E]) lookup(from S, event E) (S, bool) {
	to, ok := t.edges[from][event]
	return to, ok
}

// removeFrom deletes every entry keyed by the given source state. Entries
// where the state appears only as a destination are unaffected.
func (t *transitionTable[S, E]) removeFrom(state S) {
	delete(t.edges, state)
}

func (t *transitionTable[S, E]) clear() {
	clear(t.edges)
}

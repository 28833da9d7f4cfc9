package asyncstate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asyncstate/pkg/broadcast"
	"github.com/dmitrymomot/asyncstate/pkg/logger"
	"github.com/dmitrymomot/asyncstate/pkg/notify"
)

// Machine orchestrates transitions between states whose enter and exit
// behaviors are asynchronous operations. It owns the current state, the
// at-most-one active transition, the state registry and the event
// transition table.
//
// A Machine assumes a single logical caller drives transitions. The
// active-transition guard protects against logical re-entrancy, not
// against arbitrary parallel mutation from independent goroutines: code
// running between the two suspension points (for example a timer handler
// firing mid-transition) that calls TransitionTo or ProcessEvent observes
// the guard and no-ops.
type Machine[S, E comparable] struct {
	id string
	mu sync.RWMutex

	current    S
	started    bool
	transition *Transition[S]

	registry *stateRegistry[S]
	table    *transitionTable[S, E]

	exiting  notify.Signal[Transition[S]]
	exited   notify.Signal[Transition[S]]
	entering notify.Signal[Transition[S]]
	entered  notify.Signal[Transition[S]]

	log      *slog.Logger
	diagMode DiagnosticMode
	diagBuf  int
	diag     *broadcast.Hub[Diagnostic]
}

// New creates a Machine with no registered states. The machine is "not
// started" until its first transition completes; until then it has no
// current state to exit and rejects events.
func New[S, E comparable](opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		id:       uuid.NewString(),
		registry: newStateRegistry[S](),
		table:    newTransitionTable[S, E](),
		log:      slog.Default(),
		diagMode: DiagnosticsLog,
		diagBuf:  16,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.diagMode == DiagnosticsChannel {
		m.diag = broadcast.NewHub[Diagnostic](m.diagBuf)
	}
	return m
}

// ID returns the machine's instance identifier, carried on every
// diagnostic and log record it emits.
func (m *Machine[S, E]) ID() string {
	return m.id
}

// Close releases the machine's diagnostics hub, closing any channel-mode
// subscriptions. It does not interrupt an in-flight transition.
func (m *Machine[S, E]) Close() {
	if m.diag != nil {
		m.diag.Close()
	}
}

// AddState binds a behavior to a state identifier. Returns
// ErrDuplicateState if the identifier is already registered; replacing a
// behavior is not supported.
func (m *Machine[S, E]) AddState(id S, b Behavior[S]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry.add(id, b)
}

// RemoveState unregisters a state and drops every transition table entry
// keyed by it as a source. Entries where the state is only a destination
// are left in place. Returns ErrUnknownState if the identifier was never
// registered.
func (m *Machine[S, E]) RemoveState(id S) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.registry.remove(id); err != nil {
		return err
	}
	m.table.removeFrom(id)
	return nil
}

// RemoveAllStates unconditionally clears the state registry and the event
// transition table.
func (m *Machine[S, E]) RemoveAllStates() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registry.removeAll()
	m.table.clear()
}

// AddTransition registers (from, event) -> to in the event transition
// table, overwriting any previous destination for the pair. Both endpoints
// must be registered states at registration time; the table is not
// re-validated afterwards.
func (m *Machine[S, E]) AddTransition(from S, event E, to S) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.registry.contains(from) {
		return fmt.Errorf("transition source %v: %w", from, ErrUnknownState)
	}
	if !m.registry.contains(to) {
		return fmt.Errorf("transition destination %v: %w", to, ErrUnknownState)
	}
	m.table.set(from, event, to)
	return nil
}

// RemoveTransitionsFrom drops every table entry keyed by the given source
// state.
func (m *Machine[S, E]) RemoveTransitionsFrom(from S) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table.removeFrom(from)
}

// ClearTransitions empties the event transition table without touching the
// state registry.
func (m *Machine[S, E]) ClearTransitions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table.clear()
}

// Current returns the current state identifier. During a transition it
// reflects the source state until the exit behavior has completed and the
// destination state from then on.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Started reports whether the machine's first transition has completed.
func (m *Machine[S, E]) Started() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.started
}

// InTransition reports whether a transition is in flight.
func (m *Machine[S, E]) InTransition() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transition != nil
}

// ActiveTransition returns a snapshot of the in-flight transition, if any.
func (m *Machine[S, E]) ActiveTransition() (Transition[S], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.transition == nil {
		return Transition[S]{}, false
	}
	return *m.transition, true
}

// Is reports whether the machine is in the given state. When idle it
// compares against the current state. When a transition is active the
// result is false unless includeTransition is set, in which case the state
// matches the transition's source while the exit behavior is being awaited
// and its destination while the enter behavior is being awaited. The two
// transient phases between awaits match neither endpoint.
func (m *Machine[S, E]) Is(state S, includeTransition bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.transition == nil {
		return m.current == state
	}
	if !includeTransition {
		return false
	}
	switch m.transition.Phase {
	case PhaseExiting:
		return m.transition.From == state
	case PhaseEntering:
		return m.transition.To == state
	default:
		return false
	}
}

// OnExiting subscribes to the notification fired after the phase moves to
// PhaseExiting and before the exit behavior is awaited. Returns an
// unsubscribe function.
func (m *Machine[S, E]) OnExiting(fn func(Transition[S])) func() {
	return m.exiting.Subscribe(fn)
}

// OnExited subscribes to the notification fired right after the exit
// behavior completes.
func (m *Machine[S, E]) OnExited(fn func(Transition[S])) func() {
	return m.exited.Subscribe(fn)
}

// OnEntering subscribes to the notification fired after the current state
// has been updated and before the enter behavior is awaited.
func (m *Machine[S, E]) OnEntering(fn func(Transition[S])) func() {
	return m.entering.Subscribe(fn)
}

// OnEntered subscribes to the notification fired once the transition has
// completed and the active transition has been cleared.
func (m *Machine[S, E]) OnEntered(fn func(Transition[S])) func() {
	return m.entered.Subscribe(fn)
}

// Diagnostics subscribes to diagnostic delivery. Returns nil unless the
// machine was built with WithDiagnostics(DiagnosticsChannel).
func (m *Machine[S, E]) Diagnostics(ctx context.Context) *broadcast.Subscription[Diagnostic] {
	if m.diag == nil {
		return nil
	}
	return m.diag.Subscribe(ctx)
}

// TransitionTo drives a transition from the current state to target.
//
// The call is rejected without effect (a diagnostic is emitted and nil
// returned) when another transition is in flight, or when target equals
// the current state after the machine has started. The very first
// transition is exempt from the self-transition guard and skips the exit
// half entirely, since no state has been entered yet.
//
// An accepted transition runs to completion: phase PhaseExiting is set and
// the exiting notification fired before the exit behavior is awaited,
// PhaseExited and the exited notification follow its completion, the
// current state is updated to target, then PhaseEntering/entering precede
// the awaited enter behavior and PhaseEntered/entered follow it. Each
// notification delivers the transition snapshot taken right after the
// corresponding phase write.
//
// Returns ErrUnknownState (wrapped) if target or the current state has no
// registered behavior; this is a misconfigured graph, not a routine
// rejection. A behavior completing with an error aborts the transition and
// is returned wrapped.
func (m *Machine[S, E]) TransitionTo(ctx context.Context, target S) error {
	m.mu.Lock()
	if m.transition != nil {
		active := *m.transition
		m.mu.Unlock()
		m.diagnostic(Diagnostic{
			Reason:  ReasonTransitionActive,
			Message: "transition rejected: another transition is in flight",
			From:    active.From,
			Target:  target,
		})
		return nil
	}
	if m.started && target == m.current {
		current := m.current
		m.mu.Unlock()
		m.diagnostic(Diagnostic{
			Reason:  ReasonSelfTransition,
			Message: "transition rejected: target equals current state",
			From:    current,
			Target:  target,
		})
		return nil
	}

	first := !m.started
	from := m.current

	enter, ok := m.registry.lookup(target)
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("transition target %v: %w", target, ErrUnknownState)
	}
	var exit Behavior[S]
	if !first {
		if exit, ok = m.registry.lookup(from); !ok {
			m.mu.Unlock()
			return fmt.Errorf("transition source %v: %w", from, ErrUnknownState)
		}
	}

	tr := &Transition[S]{From: from, To: target, Phase: PhaseNotStarted}
	m.transition = tr
	m.mu.Unlock()

	m.log.Debug("transition accepted",
		logger.MachineID(m.id),
		slog.Any("from", from),
		slog.Any("to", target),
		slog.Bool("first", first),
	)

	if !first {
		m.advance(&m.exiting, tr, PhaseExiting)
		if err := exit.OnExit(ctx, target).Await(); err != nil {
			m.abort(tr, err)
			return fmt.Errorf("exit %v: %w", from, err)
		}
		m.advance(&m.exited, tr, PhaseExited)
	}

	m.mu.Lock()
	m.current = target
	m.mu.Unlock()

	m.advance(&m.entering, tr, PhaseEntering)
	if err := enter.OnEnter(ctx, from).Await(); err != nil {
		m.abort(tr, err)
		return fmt.Errorf("enter %v: %w", target, err)
	}

	m.mu.Lock()
	tr.Phase = PhaseEntered
	snapshot := *tr
	m.transition = nil
	m.mu.Unlock()

	m.entered.Emit(snapshot)

	m.mu.Lock()
	m.started = true
	m.mu.Unlock()

	return nil
}

// ProcessEvent consults the event transition table for (current state,
// event) and, when a destination is registered, delegates to TransitionTo
// and waits for it to complete.
//
// The boolean reports only whether a destination was found: false with a
// diagnostic while a transition is active or before the machine has
// started, false without side effect on a lookup miss, true otherwise. By
// construction TransitionTo's own guards cannot reject the delegated call,
// so a true result means the transition ran; a non-nil error is the
// propagated transition failure.
func (m *Machine[S, E]) ProcessEvent(ctx context.Context, event E) (bool, error) {
	m.mu.RLock()
	if m.transition != nil {
		active := *m.transition
		m.mu.RUnlock()
		m.diagnostic(Diagnostic{
			Reason:  ReasonTransitionActive,
			Message: "event rejected: another transition is in flight",
			From:    active.From,
			Target:  active.To,
			Event:   event,
		})
		return false, nil
	}
	if !m.started {
		m.mu.RUnlock()
		m.diagnostic(Diagnostic{
			Reason:  ReasonNotStarted,
			Message: "event rejected: machine has not started",
			Event:   event,
		})
		return false, nil
	}
	from := m.current
	target, ok := m.table.lookup(from, event)
	m.mu.RUnlock()

	if !ok {
		m.diagnostic(Diagnostic{
			Reason:  ReasonNoDestination,
			Message: "event ignored: no destination registered",
			From:    from,
			Event:   event,
		})
		return false, nil
	}

	if err := m.TransitionTo(ctx, target); err != nil {
		return true, err
	}
	return true, nil
}

// advance sets the transition phase under lock and delivers the snapshot
// synchronously to that phase's subscribers before returning.
func (m *Machine[S, E]) advance(sig *notify.Signal[Transition[S]], tr *Transition[S], phase Phase) {
	m.mu.Lock()
	tr.Phase = phase
	snapshot := *tr
	m.mu.Unlock()

	sig.Emit(snapshot)
}

// abort clears the active transition after a behavior failure. The started
// flag is left untouched: a machine whose first enter failed remains "not
// started" and the next transition attempt again skips the exit half.
func (m *Machine[S, E]) abort(tr *Transition[S], err error) {
	m.mu.Lock()
	snapshot := *tr
	m.transition = nil
	m.mu.Unlock()

	m.diagnostic(Diagnostic{
		Reason:  ReasonBehaviorFailed,
		Message: "transition aborted: behavior completed with error",
		From:    snapshot.From,
		Target:  snapshot.To,
		Err:     err,
	})
}

func (m *Machine[S, E]) diagnostic(d Diagnostic) {
	switch m.diagMode {
	case DiagnosticsSilent:
	case DiagnosticsChannel:
		d.MachineID = m.id
		d.Time = time.Now()
		m.diag.Publish(d)
	default:
		m.log.Debug(d.Message,
			logger.MachineID(m.id),
			slog.String("reason", string(d.Reason)),
			slog.Any("from", d.From),
			slog.Any("target", d.Target),
			slog.Any("event", d.Event),
			logger.Error(d.Err),
		)
	}
}

// Package asyncstate provides a generic finite-state orchestrator whose
// state-entry and state-exit actions may themselves be long-running
// asynchronous operations such as animations, loads, or network calls.
//
// Clients register named states with asynchronous enter/exit behavior and
// register event-triggered transitions between them; the Machine drives
// transitions safely and fires lifecycle notifications at each phase.
//
// # Model
//
// State and event identifiers are opaque, equality-comparable values: the
// Machine is parameterized over any pair of comparable types. Each state
// binds exactly one Behavior, whose OnEnter and OnExit return a
// pkg/async.Completion the machine awaits before advancing. Synchronous
// callbacks are lifted into the contract with Funcs, which resolves them
// into already-completed completions.
//
// A transition progresses through a fixed phase sequence (exiting, exited,
// entering, entered) with exactly one notification fired per phase write.
// At most one transition is in flight; a second request while one is active
// is dropped, not queued, and an in-flight transition cannot be cancelled.
// The very first transition has no prior state to exit and skips the exit
// half.
//
// # Usage
//
//	m := asyncstate.New[string, string]()
//
//	_ = m.AddState("loading", asyncstate.Funcs[string]{
//	    Enter: func(ctx context.Context, from string) error { return load(ctx) },
//	})
//	_ = m.AddState("ready", asyncstate.Funcs[string]{})
//	_ = m.AddTransition("loading", "loaded", "ready")
//
//	unsubscribe := m.OnEntered(func(tr asyncstate.Transition[string]) {
//	    log.Printf("entered %s", tr.To)
//	})
//	defer unsubscribe()
//
//	_ = m.TransitionTo(ctx, "loading") // first transition: enter only
//	_, _ = m.ProcessEvent(ctx, "loaded")
//
// # Diagnostics
//
// Routine rejections (transition in flight, self-transition, event before
// start, lookup miss) are not errors: the call no-ops and a diagnostic is
// delivered through a configurable sink, which discards it, writes it to
// slog, or publishes it to channel subscribers (WithDiagnostics).
// Misconfigured graphs, such as duplicate registration or unknown
// endpoints, surface as wrapped sentinel errors immediately.
package asyncstate

package asyncstate

import "time"

// DiagnosticMode selects where a Machine delivers its diagnostics: the
// routine soft rejections and behavior failures it observes.
type DiagnosticMode int

const (
	// DiagnosticsLog writes diagnostics to the configured slog logger at
	// debug level. This is the default.
	DiagnosticsLog DiagnosticMode = iota
	// DiagnosticsSilent discards diagnostics.
	DiagnosticsSilent
	// DiagnosticsChannel publishes diagnostics to hub subscribers (see
	// Machine.Diagnostics) instead of writing them to the log.
	DiagnosticsChannel
)

// Reason classifies a diagnostic.
type Reason string

const (
	// ReasonTransitionActive marks a transition or event request rejected
	// because another transition is in flight.
	ReasonTransitionActive Reason = "transition_active"
	// ReasonSelfTransition marks a transition to the current state rejected
	// after the machine has started.
	ReasonSelfTransition Reason = "self_transition"
	// ReasonNotStarted marks an event rejected before the first transition
	// has completed.
	ReasonNotStarted Reason = "not_started"
	// ReasonNoDestination marks an event with no registered destination
	// from the current state.
	ReasonNoDestination Reason = "no_destination"
	// ReasonBehaviorFailed marks an enter or exit behavior that completed
	// with an error, aborting its transition.
	ReasonBehaviorFailed Reason = "behavior_failed"
)

// Diagnostic describes a rejected request or failure observed by a Machine.
// From, Target and Event carry the machine's identifier types; they are
// typed any here so Diagnostic stays independent of the machine's type
// parameters.
type Diagnostic struct {
	MachineID string
	Reason    Reason
	Message   string
	From      any
	Target    any
	Event     any
	Err       error
	Time      time.Time
}

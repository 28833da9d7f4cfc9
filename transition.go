package asyncstate

// Phase marks how far a single transition has progressed through its
// exit/enter sequence. Phases advance strictly in declaration order.
type Phase int

const (
	// PhaseNotStarted is the phase of a freshly constructed transition.
	PhaseNotStarted Phase = iota
	// PhaseExiting is set immediately before the exit behavior is awaited.
	PhaseExiting
	// PhaseExited is set immediately after the exit behavior completes.
	PhaseExited
	// PhaseEntering is set immediately before the enter behavior is awaited.
	PhaseEntering
	// PhaseEntered is set immediately after the enter behavior completes;
	// it is the terminal phase of the normal flow.
	PhaseEntered
	// PhaseFinished is reserved for a future abort/cancellation flow and is
	// never assigned by the machine.
	PhaseFinished
)

// String implements fmt.Stringer for log output.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseExiting:
		return "exiting"
	case PhaseExited:
		return "exited"
	case PhaseEntering:
		return "entering"
	case PhaseEntered:
		return "entered"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Transition describes a single in-progress move between two state
// identifiers. A Machine constructs a fresh Transition for each accepted
// request, owns it for the transition's lifetime and discards it the
// instant the transition completes; transitions are never reused.
//
// Lifecycle notifications deliver Transition values, so each subscriber
// receives a snapshot taken right after the corresponding phase write;
// later phase changes do not retroactively alter delivered snapshots.
type Transition[S comparable] struct {
	From  S
	To    S
	Phase Phase
}

package asyncstate

import "errors"

var (
	// ErrDuplicateState is returned when registering a state identifier
	// that already has a behavior bound to it. Replacing a behavior is not
	// supported; remove the state first.
	ErrDuplicateState = errors.New("asyncstate: state already registered")

	// ErrUnknownState is returned when an operation references a state
	// identifier that is not present in the registry: removing an
	// unregistered state, registering a transition with an unregistered
	// endpoint, or looking up a behavior during a transition. It indicates
	// a misconfigured state graph.
	ErrUnknownState = errors.New("asyncstate: unknown state")

	// ErrNilBehavior is returned when registering a state with a nil
	// behavior.
	ErrNilBehavior = errors.New("asyncstate: nil behavior")
)

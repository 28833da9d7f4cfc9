package asyncstate

import (
	"context"

	"github.com/dmitrymomot/asyncstate/pkg/async"
)

// Behavior is the capability contract a registered state provides. Both
// operations return a Completion the machine awaits before advancing the
// transition phase; each is expected to eventually complete. The machine
// itself imposes no timeout.
//
// OnEnter receives the state being left (the zero value of S on the very
// first transition); OnExit receives the state being entered.
type Behavior[S comparable] interface {
	OnEnter(ctx context.Context, from S) *async.Completion
	OnExit(ctx context.Context, to S) *async.Completion
}

// Funcs adapts plain synchronous callbacks to the Behavior contract by
// wrapping each result in an already-completed Completion. A nil callback
// completes immediately with no error, so enter-only or exit-only states
// need not supply both.
type Funcs[S comparable] struct {
	Enter func(ctx context.Context, from S) error
	Exit  func(ctx context.Context, to S) error
}

func (f Funcs[S]) OnEnter(ctx context.Context, from S) *async.Completion {
	if f.Enter == nil {
		return async.Completed(nil)
	}
	return async.Completed(f.Enter(ctx, from))
}

func (f Funcs[S]) OnExit(ctx context.Context, to S) *async.Completion {
	if f.Exit == nil {
		return async.Completed(nil)
	}
	return async.Completed(f.Exit(ctx, to))
}

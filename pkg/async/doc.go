// Package async provides a minimal completion primitive for operations that
// run asynchronously and eventually finish with success or failure.
//
// The package is centred around the Completion type, which represents the
// eventual outcome of an operation without a result value. A Completion is
// obtained either from Run, which starts the supplied function in its own
// goroutine, or from Completed, which wraps an already-known outcome so that
// synchronous code can satisfy an asynchronous contract without spawning a
// goroutine.
//
// Callers wait with Await, bound the wait with AwaitTimeout, or poll with
// IsComplete. All coordinates several completions at once.
//
// Run is context-aware: if the provided context is cancelled before the
// function starts, the Completion resolves with the context error and the
// function never runs. Cancellation of an in-flight function is the
// function's own responsibility via the context it receives.
//
// # Usage
//
//	c := async.Run(ctx, func(ctx context.Context) error {
//	    return doSlowThing(ctx)
//	})
//	// do other work …
//	if err := c.Await(); err != nil {
//	    log.Fatal(err)
//	}
//
// Lifting a synchronous result:
//
//	c := async.Completed(validate(input))
//	_ = c.Await() // returns immediately
package async

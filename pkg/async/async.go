package async

import (
	"context"
	"sync"
	"time"
)

// Completion represents the eventual outcome of an asynchronous operation
// that produces no value, only success or failure.
type Completion struct {
	err  error
	once sync.Once
	done chan struct{}
}

// Await blocks until the operation completes and returns its error, if any.
func (c *Completion) Await() error {
	<-c.done
	return c.err
}

// AwaitTimeout blocks until the operation completes or the timeout elapses.
// Returns ErrTimeout if the timeout fires first; the underlying operation
// keeps running and its outcome remains observable through Await.
func (c *Completion) AwaitTimeout(timeout time.Duration) error {
	select {
	case <-c.done:
		return c.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the operation has finished, without blocking.
func (c *Completion) IsComplete() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Run executes fn in its own goroutine and returns a Completion that
// resolves with fn's error. If ctx is already cancelled the Completion
// resolves immediately with the context error and fn never runs.
func Run(ctx context.Context, fn func(context.Context) error) *Completion {
	c := &Completion{done: make(chan struct{})}

	go func() {
		defer close(c.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			c.once.Do(func() { c.err = ctx.Err() })
			return
		default:
		}

		err := fn(ctx)
		c.once.Do(func() { c.err = err })
	}()

	return c
}

// Completed returns an already-resolved Completion carrying err. It is the
// lift from a synchronous result into the asynchronous contract: Await
// returns immediately.
func Completed(err error) *Completion {
	c := &Completion{done: make(chan struct{})}
	c.once.Do(func() { c.err = err })
	close(c.done)
	return c
}

// All waits for every completion and returns the first error encountered,
// in argument order. All completions are awaited even after a failure.
func All(completions ...*Completion) error {
	var first error
	for _, c := range completions {
		if err := c.Await(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

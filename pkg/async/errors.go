package async

import "errors"

// ErrTimeout is returned by AwaitTimeout when the timeout elapses before
// the underlying operation completes.
var ErrTimeout = errors.New("async: operation timed out waiting for completion")

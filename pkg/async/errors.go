package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the timeout elapses
	// before the asynchronous function completes.
	ErrTimeout = errors.New("async operation timed out")

	// ErrNoFutures is returned by WaitAny when called without any futures.
	ErrNoFutures = errors.New("no futures provided")
)

package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the future is still
	// pending after the timeout elapses.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")
)

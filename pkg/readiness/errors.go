package readiness

import "errors"

var (
	// ErrTimedOut is returned by State.Err when the maximum wait was exceeded.
	ErrTimedOut = errors.New("timed out waiting for readiness")

	// ErrResourceGone is returned by State.Err when the awaited resource disappeared.
	ErrResourceGone = errors.New("resource is gone")

	// ErrProbeFailed is returned when a probe reports an error and the poller was
	// configured to fail on probe errors.
	ErrProbeFailed = errors.New("readiness probe failed")

	// ErrCancelled is returned when the caller's context ends before a terminal result.
	ErrCancelled = errors.New("readiness wait cancelled")

	// ErrInvalidInterval is returned when the poll interval is not positive.
	ErrInvalidInterval = errors.New("poll interval must be greater than zero")

	// ErrInvalidMaxWait is returned when the maximum wait is negative.
	ErrInvalidMaxWait = errors.New("max wait must not be negative")

	// ErrNilProbe is returned when no probe was supplied.
	ErrNilProbe = errors.New("probe cannot be nil")
)

package probe

import "errors"

var (
	// ErrContainerNotRunning is reported while a container exists but is not running.
	ErrContainerNotRunning = errors.New("container is not running")
	// ErrContainerMissing is reported while a container does not exist.
	ErrContainerMissing = errors.New("container does not exist")
	// ErrNonZeroExit is reported when a readiness command exits with a non-zero code.
	ErrNonZeroExit = errors.New("readiness command exited with non-zero status")
	// ErrUnexpectedStatus is reported when an HTTP response code is not accepted.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrNoAcceptedStatus is returned when an HTTP probe is built without accepted codes.
	ErrNoAcceptedStatus = errors.New("at least one accepted HTTP status is required")
	// ErrInvalidURL is returned when an HTTP probe target is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid HTTP probe URL")
)

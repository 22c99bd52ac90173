package readiness

import (
	"fmt"
	"time"
)

// Result is the state of a wait. Polling is the only non-terminal value.
type Result int

const (
	// Polling means the wait has not reached a terminal result.
	Polling Result = iota
	// Ready means the probe succeeded.
	Ready
	// TimedOut means elapsed reached the maximum wait before the probe succeeded.
	TimedOut
	// ResourceGone means the liveness check reported the resource as gone.
	ResourceGone
)

// String returns the lower-case name of the result.
func (r Result) String() string {
	switch r {
	case Polling:
		return "polling"
	case Ready:
		return "ready"
	case TimedOut:
		return "timed-out"
	case ResourceGone:
		return "resource-gone"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can leave r.
func (r Result) Terminal() bool {
	return r != Polling
}

// State is the bookkeeping of a single wait.
type State struct {
	Elapsed       time.Duration
	MaxWait       time.Duration
	Interval      time.Duration
	Attempts      int
	ResourceAlive bool
	Result        Result
	// LastOutcome is the outcome of the most recent probe invocation.
	LastOutcome Outcome
}

func newState(cfg Config) State {
	return State{
		MaxWait:       cfg.MaxWait,
		Interval:      cfg.Interval,
		ResourceAlive: true,
		Result:        Polling,
	}
}

// Err converts the state into an error: nil for Ready and a wrapped sentinel otherwise.
func (s State) Err() error {
	switch s.Result {
	case Ready:
		return nil
	case TimedOut:
		if s.LastOutcome.Err != nil {
			return fmt.Errorf(
				"%w after %s (%d attempts, last error: %w)",
				ErrTimedOut, s.Elapsed, s.Attempts, s.LastOutcome.Err,
			)
		}

		return fmt.Errorf("%w after %s (%d attempts)", ErrTimedOut, s.Elapsed, s.Attempts)
	case ResourceGone:
		return fmt.Errorf("%w after %d attempts", ErrResourceGone, s.Attempts)
	default:
		return fmt.Errorf("%w: no terminal result after %d attempts", ErrCancelled, s.Attempts)
	}
}

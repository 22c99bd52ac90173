package readiness

import "context"

// Status tags the outcome of a single probe invocation.
type Status int

const (
	// NotReady means the awaited condition does not hold yet.
	NotReady Status = iota
	// Errored means the probe could not determine readiness. By default it is
	// treated exactly like NotReady.
	Errored
	// Succeeded means the awaited condition holds.
	Succeeded
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case NotReady:
		return "not-ready"
	case Errored:
		return "error"
	case Succeeded:
		return "ready"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one probe invocation.
type Outcome struct {
	Status Status
	// Err carries details for NotReady and Errored outcomes. It may be nil.
	Err error
}

// ReadyOutcome reports that the awaited condition holds.
func ReadyOutcome() Outcome {
	return Outcome{Status: Succeeded}
}

// NotReadyOutcome reports that the awaited condition does not hold yet.
func NotReadyOutcome(reason error) Outcome {
	return Outcome{Status: NotReady, Err: reason}
}

// ErrorOutcome reports that the probe itself failed.
func ErrorOutcome(err error) Outcome {
	return Outcome{Status: Errored, Err: err}
}

// Probe checks whether the awaited condition currently holds.
// A probe must return in bounded time.
type Probe func(ctx context.Context) Outcome

// Liveness reports whether the awaited resource still exists and is running.
type Liveness func(ctx context.Context) bool

// BoolProbe adapts a plain predicate into a Probe.
func BoolProbe(check func(ctx context.Context) bool) Probe {
	return func(ctx context.Context) Outcome {
		if check(ctx) {
			return ReadyOutcome()
		}

		return NotReadyOutcome(nil)
	}
}

// CheckProbe adapts a (ready, err) style check into a Probe. A non-nil error yields
// an Errored outcome regardless of the ready value.
func CheckProbe(check func(ctx context.Context) (bool, error)) Probe {
	return func(ctx context.Context) Outcome {
		ready, err := check(ctx)

		switch {
		case err != nil:
			return ErrorOutcome(err)
		case ready:
			return ReadyOutcome()
		default:
			return NotReadyOutcome(nil)
		}
	}
}

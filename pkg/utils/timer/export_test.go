package timer

import "time"

// NewWithClock exposes the clock seam to external tests.
func NewWithClock(now func() time.Time) Timer {
	return newWithClock(now)
}

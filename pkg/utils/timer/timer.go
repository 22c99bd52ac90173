// Package timer tracks total and per-stage wall-clock time for CLI commands.
package timer

import (
	"sync"
	"time"
)

// Timer measures the duration of a command and of its current stage.
type Timer interface {
	// Start resets the timer and begins the first stage.
	Start()
	// NewStage begins a new stage without resetting the total.
	NewStage()
	// GetTiming returns the total elapsed time and the elapsed time of the current stage.
	GetTiming() (time.Duration, time.Duration)
	// Stop freezes both durations.
	Stop()
}

type clockTimer struct {
	mu         sync.Mutex
	now        func() time.Time
	start      time.Time
	stageStart time.Time
	stoppedAt  time.Time
	stopped    bool
}

// New returns a Timer backed by the wall clock. The timer is idle until Start.
func New() Timer {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *clockTimer {
	return &clockTimer{now: now}
}

func (t *clockTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.start = now
	t.stageStart = now
	t.stopped = false
}

func (t *clockTimer) NewStage() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		t.start = t.now()
	}

	t.stageStart = t.now()
	t.stopped = false
}

func (t *clockTimer) GetTiming() (time.Duration, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() {
		return 0, 0
	}

	end := t.now()
	if t.stopped {
		end = t.stoppedAt
	}

	return end.Sub(t.start), end.Sub(t.stageStart)
}

func (t *clockTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.start.IsZero() || t.stopped {
		return
	}

	t.stoppedAt = t.now()
	t.stopped = true
}

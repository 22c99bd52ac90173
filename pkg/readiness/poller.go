package readiness

import (
	"context"
	"fmt"
	"time"
)

// Config holds the timing parameters of a wait.
type Config struct {
	// MaxWait is the ceiling for accumulated elapsed time. Zero probes exactly once.
	MaxWait time.Duration
	// Interval is the fixed delay between probe attempts. Must be positive.
	Interval time.Duration
	// FailOnProbeError stops the wait as soon as a probe reports Errored instead of
	// treating the error as not ready.
	FailOnProbeError bool
}

// Validate reports whether the configuration guarantees termination.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.Interval)
	}

	if c.MaxWait < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMaxWait, c.MaxWait)
	}

	return nil
}

// Observer receives a copy of the state once per poll cycle, including the final one.
type Observer func(state State)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option configures a Poller.
type Option func(*Poller)

// WithLiveness aborts the wait with ResourceGone once liveness reports false.
func WithLiveness(liveness Liveness) Option {
	return func(p *Poller) {
		p.liveness = liveness
	}
}

// WithObserver registers a per-cycle observer. Observers must not block.
func WithObserver(observer Observer) Option {
	return func(p *Poller) {
		if observer != nil {
			p.observers = append(p.observers, observer)
		}
	}
}

// WithSleeper replaces the sleep between attempts.
func WithSleeper(sleeper Sleeper) Option {
	return func(p *Poller) {
		if sleeper != nil {
			p.sleep = sleeper
		}
	}
}

// Poller waits for a single resource. It is not safe for concurrent use, and a
// resource should be awaited by at most one Poller at a time.
type Poller struct {
	cfg       Config
	probe     Probe
	liveness  Liveness
	observers []Observer
	sleep     Sleeper
}

// New constructs a Poller after validating cfg.
func New(cfg Config, probe Probe, opts ...Option) (*Poller, error) {
	if probe == nil {
		return nil, ErrNilProbe
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	poller := &Poller{
		cfg:   cfg,
		probe: probe,
		sleep: sleepContext,
	}

	for _, opt := range opts {
		opt(poller)
	}

	return poller, nil
}

// Wait polls until a terminal result is reached and returns the final state.
//
// Terminal results are returned with a nil error; use State.Err to turn them into an
// error. A non-nil error is returned only when ctx ends first (ErrCancelled) or when
// FailOnProbeError is set and a probe errored (ErrProbeFailed). In both cases the
// state reached so far is returned with Result Polling.
func (p *Poller) Wait(ctx context.Context) (State, error) {
	state := newState(p.cfg)

	for {
		ctxErr := ctx.Err()
		if ctxErr != nil {
			return state, fmt.Errorf("%w: %w", ErrCancelled, ctxErr)
		}

		outcome := p.probe(ctx)
		state.Attempts++
		state.LastOutcome = outcome

		if outcome.Status == Succeeded {
			return p.finish(state, Ready), nil
		}

		if outcome.Status == Errored && p.cfg.FailOnProbeError {
			p.notify(state)

			return state, fmt.Errorf("%w: %w", ErrProbeFailed, outcome.Err)
		}

		if p.liveness != nil && !p.liveness(ctx) {
			state.ResourceAlive = false

			return p.finish(state, ResourceGone), nil
		}

		// Only reachable with a zero MaxWait: a single probe and no sleep.
		if state.Elapsed >= p.cfg.MaxWait {
			return p.finish(state, TimedOut), nil
		}

		sleepErr := p.sleep(ctx, p.cfg.Interval)
		if sleepErr != nil {
			return state, fmt.Errorf("%w: %w", ErrCancelled, sleepErr)
		}

		state.Elapsed += p.cfg.Interval

		if state.Elapsed >= p.cfg.MaxWait {
			return p.finish(state, TimedOut), nil
		}

		p.notify(state)
	}
}

func (p *Poller) finish(state State, result Result) State {
	state.Result = result
	p.notify(state)

	return state
}

func (p *Poller) notify(state State) {
	for _, observer := range p.observers {
		observer(state)
	}
}

// Wait is a convenience wrapper that constructs a Poller and runs it once.
func Wait(ctx context.Context, cfg Config, probe Probe, opts ...Option) (State, error) {
	poller, err := New(cfg, probe, opts...)
	if err != nil {
		return State{}, err
	}

	return poller.Wait(ctx)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Package waiter runs readiness waits with the farmops reporting stack attached:
// notify progress lines, logrus diagnostics, Prometheus metrics, and JSON reports.
package waiter

import (
	"context"
	"fmt"
	"io"

	"github.com/devantler-tech/farmops/pkg/metrics"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/devantler-tech/farmops/pkg/report"
	"github.com/devantler-tech/farmops/pkg/utils/logging"
	"github.com/devantler-tech/farmops/pkg/utils/notify"
	"github.com/sirupsen/logrus"
)

// Target is a single resource to wait for.
type Target struct {
	// Name identifies the resource in messages, logs, metrics, and reports.
	Name     string
	Probe    readiness.Probe
	Liveness readiness.Liveness
}

// Waiter waits for targets using one shared configuration.
type Waiter struct {
	cfg           readiness.Config
	progressEvery int
	out           io.Writer
	logger        logrus.FieldLogger
	recorder      *metrics.Recorder
	reports       *report.Writer
	runID         string
	sleeper       readiness.Sleeper
}

// Option configures a Waiter.
type Option func(*Waiter)

// WithOutput sets the writer for notify lines. Nil silences them.
func WithOutput(out io.Writer) Option {
	return func(w *Waiter) {
		if out == nil {
			out = io.Discard
		}

		w.out = out
	}
}

// WithProgressEvery emits a progress line every n attempts. Zero disables it.
func WithProgressEvery(n int) Option {
	return func(w *Waiter) {
		w.progressEvery = n
	}
}

// WithLogger attaches a logger that receives every poll cycle. Nil silences it.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(w *Waiter) {
		if logger == nil {
			logger = discardLogger()
		}

		w.logger = logger
	}
}

// WithRecorder records attempts, durations, and results.
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(w *Waiter) {
		w.recorder = recorder
	}
}

// WithReports writes a JSON report for every finished wait.
func WithReports(reports *report.Writer) Option {
	return func(w *Waiter) {
		w.reports = reports
	}
}

// WithRunID tags logs and reports with runID instead of a generated one.
func WithRunID(runID string) Option {
	return func(w *Waiter) {
		w.runID = runID
	}
}

// WithSleeper replaces the sleep between attempts.
func WithSleeper(sleeper readiness.Sleeper) Option {
	return func(w *Waiter) {
		w.sleeper = sleeper
	}
}

// New validates cfg and returns a Waiter.
func New(cfg readiness.Config, opts ...Option) (*Waiter, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid wait configuration: %w", err)
	}

	waiter := &Waiter{
		cfg:    cfg,
		out:    io.Discard,
		logger: discardLogger(),
	}

	for _, opt := range opts {
		opt(waiter)
	}

	if waiter.runID == "" {
		waiter.runID = report.NewRunID()
	}

	return waiter, nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

// RunID returns the identifier attached to logs and reports.
func (w *Waiter) RunID() string {
	return w.runID
}

// Wait blocks until target reaches a terminal result. The returned error is nil only
// when the target is Ready; otherwise it is prefixed with the target name and wraps
// readiness.ErrTimedOut, readiness.ErrResourceGone, readiness.ErrCancelled, or
// readiness.ErrProbeFailed.
func (w *Waiter) Wait(ctx context.Context, target Target) (readiness.State, error) {
	opts := []readiness.Option{
		readiness.WithObserver(logging.Observer(w.logger, target.Name, w.runID)),
		readiness.WithObserver(w.progress(target.Name)),
	}

	if target.Liveness != nil {
		opts = append(opts, readiness.WithLiveness(target.Liveness))
	}

	if w.recorder != nil {
		opts = append(opts, readiness.WithObserver(w.recorder.Observer(target.Name)))
	}

	if w.sleeper != nil {
		opts = append(opts, readiness.WithSleeper(w.sleeper))
	}

	state, err := readiness.Wait(ctx, w.cfg, target.Probe, opts...)
	if err != nil && w.recorder != nil {
		w.recorder.RecordAborted(target.Name, "aborted", state)
	}

	if err == nil {
		err = state.Err()
	}

	w.report(target.Name, state, err)

	if err != nil {
		notify.Errorf(w.out, "%s: %v", target.Name, err)

		return state, fmt.Errorf("%s: %w", target.Name, err)
	}

	notify.Successf(w.out, "%s ready after %d attempt(s), %s elapsed", target.Name, state.Attempts, state.Elapsed)

	return state, nil
}

func (w *Waiter) progress(name string) readiness.Observer {
	return func(state readiness.State) {
		if w.progressEvery <= 0 || state.Result != readiness.Polling || state.Attempts%w.progressEvery != 0 {
			return
		}

		notify.Waitingf(w.out, "waiting for %s (attempt %d, %s elapsed)", name, state.Attempts, state.Elapsed)
	}
}

func (w *Waiter) report(name string, state readiness.State, err error) {
	if w.reports == nil {
		return
	}

	writeErr := w.reports.Write(report.FromState(w.runID, name, state, err))
	if writeErr != nil {
		w.logger.WithError(writeErr).Warn("failed to write report")
	}
}

// Package logging configures the logrus logger used for diagnostic output.
//
// User-facing status lines go through package notify; logrus carries the per-attempt
// detail that is only interesting with --verbose or when output is collected by CI.
package logging

import (
	"io"
	"os"

	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/sirupsen/logrus"
)

// Options controls logger construction.
type Options struct {
	// Out defaults to os.Stderr.
	Out io.Writer
	// Verbose lowers the level to debug so every poll attempt is logged.
	Verbose bool
	// JSON switches to logrus' JSON formatter.
	JSON bool
}

// New returns a logger writing to opts.Out.
func New(opts Options) *logrus.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05Z07:00",
		})
	}

	return logger
}

// Observer logs every poll cycle at debug level and the terminal state at info, or
// at warn when the wait did not end Ready.
func Observer(logger logrus.FieldLogger, resource, runID string) readiness.Observer {
	return func(state readiness.State) {
		entry := logger.WithFields(logrus.Fields{
			"run":      runID,
			"resource": resource,
			"attempt":  state.Attempts,
			"elapsed":  state.Elapsed.String(),
			"outcome":  state.LastOutcome.Status.String(),
		})

		if state.LastOutcome.Err != nil {
			entry = entry.WithError(state.LastOutcome.Err)
		}

		switch state.Result {
		case readiness.Polling:
			entry.Debug("not ready yet")
		case readiness.Ready:
			entry.Info("ready")
		case readiness.TimedOut:
			entry.Warn("timed out")
		case readiness.ResourceGone:
			entry.Warn("resource gone")
		}
	}
}

// Package report renders wait results as JSON lines for machine consumption.
package report

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/devantler-tech/farmops/pkg/readiness"
	"github.com/oklog/ulid/v2"
)

// Report is one finished (or aborted) wait.
type Report struct {
	Run      string  `json:"run"`
	Resource string  `json:"resource"`
	Result   string  `json:"result"`
	Attempts int     `json:"attempts"`
	Elapsed  float64 `json:"elapsed"`
	Error    string  `json:"error,omitempty"`
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a lexically sortable identifier shared by every report and log line
// of one command invocation.
func NewRunID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// FromState builds a report from the final state of a wait. A non-nil err takes
// precedence over the state's own error, and a Polling state carrying err is reported
// as "aborted".
func FromState(run, resource string, state readiness.State, err error) Report {
	rep := Report{
		Run:      run,
		Resource: resource,
		Result:   state.Result.String(),
		Attempts: state.Attempts,
		Elapsed:  state.Elapsed.Seconds(),
	}

	if err == nil {
		err = state.Err()
	}

	if err != nil {
		rep.Error = err.Error()

		if !state.Result.Terminal() {
			rep.Result = "aborted"
		}
	}

	return rep
}

// Writer serialises reports as newline-delimited JSON. It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write encodes rep on its own line.
func (w *Writer) Write(rep Report) error {
	data, err := sonic.ConfigStd.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report for %s: %w", rep.Resource, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	_, err = w.out.Write(append(data, '\n'))
	if err != nil {
		return fmt.Errorf("write report for %s: %w", rep.Resource, err)
	}

	return nil
}

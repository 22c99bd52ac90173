package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/devantler-tech/farmops/pkg/utils/timer"
	fcolor "github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// progressLabels names the states a task line moves through.
type progressLabels struct {
	Pending   string
	Running   string
	Completed string
}

func waitingLabels() progressLabels {
	return progressLabels{Pending: "queued", Running: "waiting", Completed: "ready"}
}

// ProgressTask is a named unit of work run by a ProgressGroup.
type ProgressTask struct {
	Name string
	Fn   func(ctx context.Context) error
}

type taskState int

const (
	taskPending taskState = iota
	taskRunning
	taskComplete
	taskFailed
)

const spinnerTick = 100 * time.Millisecond

func spinnerFrames() []string {
	return []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
}

// ProgressGroup runs tasks concurrently and keeps one status line per task.
//
// On a terminal the lines are redrawn in place with a spinner:
//
//	⏳ Waiting for services...
//	⠦ database waiting
//	✔ www ready
//
// Elsewhere only state changes are printed:
//
//	⏳ Waiting for services...
//	► database waiting
//	► www waiting
//	✔ www ready
//	✔ database ready
//
// The first failing task cancels the others and its error is returned.
type ProgressGroup struct {
	title  string
	emoji  string
	labels progressLabels
	writer io.Writer
	timer  timer.Timer
	isTTY  bool

	mu      sync.Mutex
	order   []string
	states  map[string]taskState
	frame   int
	drawn   int
	stopped chan struct{}
	done    chan struct{}
}

// ProgressOption configures a ProgressGroup.
type ProgressOption func(*ProgressGroup)

// WithTimer starts a new timer stage for the group and prints its durations on success.
func WithTimer(tmr timer.Timer) ProgressOption {
	return func(pg *ProgressGroup) {
		pg.timer = tmr
	}
}

// withInteractive forces terminal or line mode regardless of the writer.
func withInteractive(interactive bool) ProgressOption {
	return func(pg *ProgressGroup) {
		pg.isTTY = interactive
	}
}

// NewProgressGroup returns a group writing to writer, or os.Stdout when nil.
func NewProgressGroup(title, emoji string, writer io.Writer, opts ...ProgressOption) *ProgressGroup {
	if writer == nil {
		writer = os.Stdout
	}

	if emoji == "" {
		emoji = "⏳"
	}

	isTTY := false
	if file, ok := writer.(*os.File); ok {
		isTTY = term.IsTerminal(int(file.Fd()))
	}

	pg := &ProgressGroup{
		title:   title,
		emoji:   emoji,
		labels:  waitingLabels(),
		writer:  writer,
		isTTY:   isTTY,
		states:  make(map[string]taskState),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(pg)
	}

	return pg
}

// Run executes tasks concurrently. A group runs once.
func (pg *ProgressGroup) Run(ctx context.Context, tasks ...ProgressTask) error {
	if len(tasks) == 0 {
		return nil
	}

	for _, task := range tasks {
		pg.order = append(pg.order, task.Name)
		pg.states[task.Name] = taskPending
	}

	if pg.timer != nil {
		pg.timer.NewStage()
	}

	_, _ = fmt.Fprintf(pg.writer, "%s %s...\n", pg.emoji, pg.title)

	if pg.isTTY {
		pg.redraw()

		go pg.spin()
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		group.Go(func() error {
			pg.transition(task.Name, taskRunning, nil)

			err := task.Fn(groupCtx)
			if err != nil {
				pg.transition(task.Name, taskFailed, err)

				return fmt.Errorf("%s: %w", task.Name, err)
			}

			pg.transition(task.Name, taskComplete, nil)

			return nil
		})
	}

	err := group.Wait()

	if pg.isTTY {
		close(pg.stopped)
		<-pg.done
		pg.redraw()
	}

	if err != nil {
		return err //nolint:wrapcheck // already prefixed with the task name
	}

	if pg.timer != nil {
		writeTiming(pg.writer, pg.timer)
	}

	return nil
}

func (pg *ProgressGroup) transition(name string, state taskState, err error) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	pg.states[name] = state

	if pg.isTTY {
		return
	}

	switch state {
	case taskRunning:
		_, _ = fmt.Fprintf(pg.writer, "► %s %s\n", name, pg.labels.Running)
	case taskComplete:
		_, _ = fcolor.New(fcolor.FgGreen).Fprintf(pg.writer, "✔ %s %s\n", name, pg.labels.Completed)
	case taskFailed:
		_, _ = fcolor.New(fcolor.FgRed).Fprintf(pg.writer, "✗ %s failed: %v\n", name, err)
	case taskPending:
	}
}

func (pg *ProgressGroup) spin() {
	defer close(pg.done)

	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()

	for {
		select {
		case <-pg.stopped:
			return
		case <-ticker.C:
			pg.mu.Lock()
			pg.frame = (pg.frame + 1) % len(spinnerFrames())
			pg.mu.Unlock()

			pg.redraw()
		}
	}
}

// redraw rewrites every task line in declaration order.
func (pg *ProgressGroup) redraw() {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.drawn > 0 {
		_, _ = fmt.Fprintf(pg.writer, "\033[%dA", pg.drawn)
	}

	for _, name := range pg.order {
		_, _ = fmt.Fprintf(pg.writer, "\033[K%s\n", pg.line(name, pg.states[name]))
	}

	pg.drawn = len(pg.order)
}

func (pg *ProgressGroup) line(name string, state taskState) string {
	switch state {
	case taskRunning:
		return fcolor.New(fcolor.FgCyan).Sprintf("%s %s %s", spinnerFrames()[pg.frame], name, pg.labels.Running)
	case taskComplete:
		return fcolor.New(fcolor.FgGreen).Sprintf("✔ %s %s", name, pg.labels.Completed)
	case taskFailed:
		return fcolor.New(fcolor.FgRed).Sprintf("✗ %s failed", name)
	case taskPending:
		return fcolor.New(fcolor.FgHiBlack).Sprintf("○ %s %s", name, pg.labels.Pending)
	default:
		return "? " + name
	}
}

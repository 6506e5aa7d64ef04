// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/sourcerer/internal/ui/output"
	"go.trai.ch/sourcerer/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with plain lines. Progress lines go to
// stdout; per-project status goes to stderr. Successful projects are only
// reported in verbose mode.
type Renderer struct {
	stdout  io.Writer
	stderr  io.Writer
	output  *termenv.Output
	verbose bool

	mu    sync.Mutex
	tasks map[string]*taskState // spanID -> task state
}

type taskState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer.
func NewRenderer(stdout, stderr io.Writer, verbose bool) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.New(stderr),
		verbose: verbose,
		tasks:   make(map[string]*taskState),
	}
}

// OnTaskStart records the span and announces it in verbose mode.
func (r *Renderer) OnTaskStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{
		name:      name,
		startTime: startTime,
	}

	if r.verbose {
		prefix := output.Faint(r.output, fmt.Sprintf("[%s]", name))
		_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
	}
}

// OnTaskComplete prints failures, and successes in verbose mode.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime)
	prefix := fmt.Sprintf("[%s]", task.name)

	symbol := output.Mark(r.output, style.ForOutcome(err == nil))
	if err != nil {
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %s\n",
			prefix, symbol, duration, firstLine(err.Error()))
		return
	}

	if r.verbose {
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}
}

// OnProgress prints `src<worker> <done>/<total>`.
func (r *Renderer) OnProgress(worker, done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "src%d %d/%d\n", worker, done, total)
}

// OnSummary prints the outcome counts of the merged report.
func (r *Renderer) OnSummary(summary domain.Summary, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	symbol := output.Mark(r.output, style.ForSummary(summary.Total, summary.Failed))
	_, _ = fmt.Fprintf(r.stderr, "%s %d projects: %d succeeded, %d failed in %v\n",
		symbol, summary.Total, summary.Succeeded, summary.Failed, elapsed.Round(time.Millisecond))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

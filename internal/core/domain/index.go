package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ImportCommand is a command understood by the indexing service's import handler.
type ImportCommand string

const (
	// CommandFullImport starts an import run.
	CommandFullImport ImportCommand = "full-import"
	// CommandStatus reports the state of the current run.
	CommandStatus ImportCommand = "status"
	// CommandAbort stops the current run.
	CommandAbort ImportCommand = "abort"
)

// completedPrefix marks a finished run in the status messages.
const completedPrefix = "Indexing completed"

// ImportRequest selects what a full-import indexes.
type ImportRequest struct {
	// Start and End bound an id range when End > 0.
	Start int
	End   int
	// ProjectID selects a single project.
	ProjectID string
	Clean     bool
	Commit    bool
}

// Validate rejects inverted ranges and a range combined with a project id.
func (r ImportRequest) Validate() error {
	if r.Start < 0 || r.End < 0 {
		return WithMeta(ErrInvalidImportRange, "start", r.Start)
	}
	if r.End > 0 && r.End < r.Start {
		return zerr.With(WithMeta(ErrInvalidImportRange, "start", r.Start), "end", r.End)
	}
	if r.ProjectID != "" && (r.Start > 0 || r.End > 0) {
		return WithMeta(ErrInvalidImportRange, "project", r.ProjectID)
	}
	return nil
}

// Params returns the form parameters of the request.
func (r ImportRequest) Params() map[string]string {
	p := map[string]string{
		"clean":  strconv.FormatBool(r.Clean),
		"commit": strconv.FormatBool(r.Commit),
	}
	if r.ProjectID != "" {
		p["project"] = r.ProjectID
	}
	if r.End > 0 {
		p["start"] = strconv.Itoa(r.Start)
		p["end"] = strconv.Itoa(r.End)
	}
	return p
}

// ImportStatus is the indexing service's view of the current import run.
type ImportStatus struct {
	Status   string            `json:"status"`
	Messages map[string]string `json:"statusMessages"`
}

// Idle reports whether the service is not running an import.
func (s *ImportStatus) Idle() bool {
	return s.Status == "idle"
}

// Finished reports whether the last run announced its completion.
func (s *ImportStatus) Finished() bool {
	return strings.HasPrefix(s.Messages[""], completedPrefix)
}

// ImportPhase combines Idle and Finished. The two flags are independent, so
// all four combinations are kept apart.
type ImportPhase int

const (
	// PhaseRunning is neither idle nor finished.
	PhaseRunning ImportPhase = iota
	// PhaseIdle is idle without a completion message; the run stopped early or never started.
	PhaseIdle
	// PhaseFinished carries a completion message while the service still reports work.
	PhaseFinished
	// PhaseCompleted is idle and finished.
	PhaseCompleted
)

// Phase returns the combined phase of the status.
func (s *ImportStatus) Phase() ImportPhase {
	switch idle, finished := s.Idle(), s.Finished(); {
	case idle && finished:
		return PhaseCompleted
	case idle:
		return PhaseIdle
	case finished:
		return PhaseFinished
	default:
		return PhaseRunning
	}
}

func (p ImportPhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseIdle:
		return "idle"
	case PhaseFinished:
		return "finished"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

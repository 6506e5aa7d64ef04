package domain

// ProjectState is the per-project state inside a worker.
// Transitions run strictly in declaration order, Succeeded and Failed being
// alternatives.
type ProjectState int

const (
	// StateUnprocessed means no outcome is recorded yet.
	StateUnprocessed ProjectState = iota
	// StateStaging means the workspace is being materialized.
	StateStaging
	// StateCompiling means the build tool is running.
	StateCompiling
	// StateSucceeded means the build tool exited with status zero.
	StateSucceeded
	// StateFailed means staging or compilation failed.
	StateFailed
	// StateRecorded means the outcome is flushed to the progress store.
	StateRecorded
)

func (s ProjectState) String() string {
	switch s {
	case StateUnprocessed:
		return "unprocessed"
	case StateStaging:
		return "staging"
	case StateCompiling:
		return "compiling"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateRecorded:
		return "recorded"
	default:
		return "unknown"
	}
}

package domain

import "time"

// BuildResult is the classified outcome of one build tool invocation.
type BuildResult struct {
	Success bool
	// Output is the interleaved stdout and stderr of the tool, or the reason
	// the tool could not be run.
	Output string
	// ExitCode is -1 when the tool did not exit on its own.
	ExitCode int
}

// BuildSettings configures how the build tool is invoked.
type BuildSettings struct {
	Tool    string
	Target  string
	Timeout time.Duration
	Env     map[string]string
}

package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// BuildFiles holds the generated descriptor texts of one attempt.
// Fields are declared in JSON key order so reports encode with sorted keys.
type BuildFiles struct {
	Descriptor string `json:"buildfile"`
	Manifest   string `json:"ivyfile"`
}

// Outcome is the recorded result of one compile attempt.
type Outcome struct {
	BuildFiles BuildFiles `json:"build_files"`
	Output     string     `json:"output"`
	Success    bool       `json:"success"`
}

// NewOutcome builds an outcome. Output is dropped on success.
func NewOutcome(files BuildFiles, success bool, output string) Outcome {
	if success {
		output = ""
	}
	return Outcome{
		BuildFiles: files,
		Success:    success,
		Output:     output,
	}
}

// Report maps project ids to outcomes.
type Report map[string]Outcome

// IDs returns the report keys in sorted order.
func (r Report) IDs() []string {
	return slices.Sorted(maps.Keys(r))
}

// Summary counts a report's outcomes.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summary returns the outcome counts of the report.
func (r Report) Summary() Summary {
	s := Summary{Total: len(r)}
	for _, o := range r {
		if o.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// MergeReports unions partition reports. An id present in more than one part
// means the partitioning is broken, so the merge fails instead of choosing one.
func MergeReports(parts ...Report) (Report, error) {
	size := 0
	for _, p := range parts {
		size += len(p)
	}

	merged := make(Report, size)
	for i, p := range parts {
		for id, o := range p {
			if _, dup := merged[id]; dup {
				return nil, zerr.With(WithMeta(ErrDuplicateOutcome, "project", id), "partition", i)
			}
			merged[id] = o
		}
	}
	return merged, nil
}

// Package style defines the colors and marks printed next to outcomes and log
// levels.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Mark is a one-glyph status indicator.
type Mark struct {
	Glyph string
	Color lipgloss.Color
}

// Marks.
var (
	Success = Mark{Glyph: "✓", Color: Green}
	Failure = Mark{Glyph: "✗", Color: Red}
	Warning = Mark{Glyph: "!", Color: Yellow}
)

// Arrow prefixes each cause of a logged error.
const Arrow = "→"

// ForOutcome returns the mark of a single compile attempt.
func ForOutcome(success bool) Mark {
	if success {
		return Success
	}
	return Failure
}

// ForSummary returns the mark of a whole run. Failed projects are recorded
// outcomes rather than run errors, so a mixed run only gets a warning.
func ForSummary(total, failed int) Mark {
	switch {
	case failed == 0:
		return Success
	case failed == total:
		return Failure
	default:
		return Warning
	}
}

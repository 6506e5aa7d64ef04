// Package output builds termenv outputs whose color profile follows the
// destination writer and NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/sourcerer/internal/ui/style"
	"golang.org/x/term"
)

// ColorProfile returns the color profile for w.
// NO_COLOR and non-terminal writers get Ascii, so redirected logs and
// progress files stay free of escape codes.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// New creates an output for w. A nil writer means stderr.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile(w)), termenv.WithTTY(true))
}

// Paint colors s for out. Under the Ascii profile s is returned unchanged.
func Paint(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(out.Color(string(c))).String()
}

// Faint renders s dimmed.
func Faint(out *termenv.Output, s string) string {
	return out.String(s).Faint().String()
}

// Mark renders the glyph of m in its color.
func Mark(out *termenv.Output, m style.Mark) string {
	return Paint(out, m.Color, m.Glyph)
}

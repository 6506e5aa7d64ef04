package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/sourcerer/internal/ui/output"
	"go.trai.ch/sourcerer/internal/ui/style"
)

// PrettyHandler is a slog.Handler printing one colored line per record:
// the level mark, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// group is the dotted prefix applied to attributes added after WithGroup.
	group string
	// attrs are rendered once, when they are attached.
	attrs []string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil w means stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// levelLook returns the glyph prefix and color of a level.
func levelLook(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Failure.Glyph + " ", style.Failure.Color
	case level >= slog.LevelWarn:
		return style.Warning.Glyph + " ", style.Warning.Color
	default:
		return "", style.Muted
	}
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	prefix, color := levelLook(r.Level)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, s := range renderAttr(h.group, a) {
			b.WriteByte(' ')
			b.WriteString(s)
		}
		return true
	})

	_, err := h.out.WriteString(output.Paint(h.out, color, b.String()) + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, renderAttr(h.group, a)...)
	}
	return &next
}

// WithGroup returns a handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = qualify(h.group, name)
	return &next
}

// renderAttr flattens group-valued attributes into dotted keys.
func renderAttr(group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return nil
	}
	if a.Value.Kind() != slog.KindGroup {
		return []string{qualify(group, a.Key) + "=" + a.Value.String()}
	}

	inner := group
	if a.Key != "" {
		inner = qualify(group, a.Key)
	}
	var out []string
	for _, ga := range a.Value.Group() {
		out = append(out, renderAttr(inner, ga)...)
	}
	return out
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

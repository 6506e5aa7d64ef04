package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/sourcerer/internal/ui/output"
	"go.trai.ch/sourcerer/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&buf), "non-terminal writers get Ascii")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("src0 1/4")
	assert.Equal(t, "src0 1/4", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestPaint_Ascii(t *testing.T) {
	out := output.New(&bytes.Buffer{})

	assert.Equal(t, "BUILD FAILED", output.Paint(out, style.Red, "BUILD FAILED"))
	assert.Equal(t, "[project 7]", output.Faint(out, "[project 7]"))
	assert.Equal(t, "✗", output.Mark(out, style.Failure))
}

func TestPaint_Color(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))

	painted := output.Paint(out, style.Green, "ok")
	assert.Contains(t, painted, "ok")
	assert.NotEqual(t, "ok", painted)
}

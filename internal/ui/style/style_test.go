package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sourcerer/internal/ui/style"
)

func TestForSummary(t *testing.T) {
	assert.Equal(t, style.Success, style.ForSummary(0, 0))
	assert.Equal(t, style.Success, style.ForSummary(3, 0))
	assert.Equal(t, style.Warning, style.ForSummary(3, 1))
	assert.Equal(t, style.Failure, style.ForSummary(3, 3))
}

func TestForOutcome(t *testing.T) {
	assert.Equal(t, "✓", style.ForOutcome(true).Glyph)
	assert.Equal(t, style.Red, style.ForOutcome(false).Color)
}

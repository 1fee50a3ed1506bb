package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("done")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "done")
}

func TestFormatError(t *testing.T) {
	got := FormatError("directory 'svc' already exists")
	assert.Contains(t, got, "Error:")
	assert.Contains(t, got, "already exists")
}

func TestFormatWarning(t *testing.T) {
	got := FormatWarning("git init failed")
	assert.Contains(t, got, "Warning:")
	assert.Contains(t, got, "git init failed")
}

func TestRenderPanel(t *testing.T) {
	got := RenderPanel("Creating microservice: testservice")
	assert.Contains(t, got, "Creating microservice: testservice")
	assert.Contains(t, got, "╭", "panel should use a rounded border")
}

func TestSemanticStyles(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
	assert.True(t, StyleBold.GetBold())
	assert.True(t, StyleDim.GetFaint())
	assert.True(t, StyleError.GetBold())
}

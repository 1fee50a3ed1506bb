package output

import (
	"github.com/charmbracelet/glamour"
)

// markdownWrap is the word-wrap width for rendered markdown.
const markdownWrap = 80

// RenderMarkdown renders markdown for the terminal. When stdout is not a
// terminal, or rendering fails, the source is returned unchanged so that
// piped output stays plain text.
func RenderMarkdown(md string) string {
	if !IsTTY() {
		return md
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		Debug("markdown renderer unavailable", "error", err)
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		Debug("markdown render failed", "error", err)
		return md
	}
	return out
}

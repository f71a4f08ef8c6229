package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownWidth is the wrap width for rendered markdown.
const MarkdownWidth = 100

// Markdown renders markdown for the terminal, or passes it through when
// rendering is off or fails.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer. enabled=false yields a passthrough.
func NewMarkdown(enabled bool) *Markdown {
	if !enabled {
		return &Markdown{}
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(MarkdownWidth),
	)
	if err != nil {
		return &Markdown{}
	}
	return &Markdown{renderer: r}
}

// Render returns the rendered text without surrounding blank lines.
func (m *Markdown) Render(src string) string {
	if m == nil || m.renderer == nil {
		return src
	}
	out, err := m.renderer.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}

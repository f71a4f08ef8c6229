// Package ui holds terminal presentation helpers: colour styles, markdown
// rendering, a status spinner and confirmation prompts.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme paints short strings. A disabled theme returns input unchanged.
type Theme struct {
	enabled bool

	success lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	bold    lipgloss.Style
	title   lipgloss.Style
}

// NewTheme builds a theme. Colour is also off when NO_COLOR is set.
func NewTheme(color bool) *Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}
	return &Theme{
		enabled: color,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		bold:    lipgloss.NewStyle().Bold(true),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

// Plain is a theme with colour disabled.
func Plain() *Theme {
	return &Theme{}
}

// Enabled reports whether the theme emits styling.
func (t *Theme) Enabled() bool {
	return t != nil && t.enabled
}

func (t *Theme) paint(s lipgloss.Style, text string) string {
	if !t.Enabled() {
		return text
	}
	return s.Render(text)
}

func (t *Theme) Success(s string) string { return t.paint(t.success, s) }
func (t *Theme) Error(s string) string   { return t.paint(t.err, s) }
func (t *Theme) Warn(s string) string    { return t.paint(t.warn, s) }
func (t *Theme) Muted(s string) string   { return t.paint(t.muted, s) }
func (t *Theme) Accent(s string) string  { return t.paint(t.accent, s) }
func (t *Theme) Bold(s string) string    { return t.paint(t.bold, s) }
func (t *Theme) Title(s string) string   { return t.paint(t.title, s) }

// Separator returns a horizontal rule of n copies of ch.
func Separator(ch string, n int) string {
	return strings.Repeat(ch, n)
}

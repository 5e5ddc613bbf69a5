// Package style holds the colors and glyphs shared by log lines and prompts.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#2E7DD7")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Question renders an interactive question.
var Question = lipgloss.NewStyle().Bold(true).Foreground(Accent)

// Hint renders the answer hint next to a question.
var Hint = lipgloss.NewStyle().Foreground(Slate)

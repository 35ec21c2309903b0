// Package style holds the palette and glyphs shared by the log handler and the text renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	// Iris highlights package names.
	Iris = lipgloss.Color("#8B5CF6")
	// Slate is used for keys and routine log lines.
	Slate = lipgloss.Color("#667085")
	// Yellow marks skipped packages and warnings.
	Yellow = lipgloss.Color("#F59E0B")
	// Red marks errors.
	Red = lipgloss.Color("#D93025")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Package styles provides Lipgloss styles for CLI output using the Srcery colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Srcery (high-contrast, warm) theme from Gogh
const (
	// Red is used for errors and failed checks (Srcery ANSI 1)
	Red = lipgloss.Color("#EF2F27")
	// Green is used for success messages and passing checks (Srcery ANSI 2)
	Green = lipgloss.Color("#519F50")
	// Yellow is used for warnings (Srcery ANSI 3)
	Yellow = lipgloss.Color("#FBB829")
	// Blue is used for informational output (Srcery ANSI 4)
	Blue = lipgloss.Color("#2C78BF")
	// Magenta is an accent colour for headers (Srcery ANSI 5)
	Magenta = lipgloss.Color("#E02C6D")
	// Cream is the primary text colour (Srcery ANSI 15 bright white)
	Cream = lipgloss.Color("#FCE8C3")
	// Gray is used for secondary/dim text (Srcery ANSI 8 bright black)
	Gray = lipgloss.Color("#918175")
)

// Pre-defined styles using the color palette

// Header is the style for the tool banner and section headers
var Header = lipgloss.NewStyle().
	Foreground(Magenta).
	Bold(true)

// Success is the style for completion messages and passing checks
var Success = lipgloss.NewStyle().
	Foreground(Green)

// Error is the style for failure messages and failing checks
var Error = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Warn is the style for non-fatal warnings
var Warn = lipgloss.NewStyle().
	Foreground(Yellow)

// Info is the style for progress and status messages
var Info = lipgloss.NewStyle().
	Foreground(Blue)

// Dim is the style for secondary detail text
var Dim = lipgloss.NewStyle().
	Foreground(Gray)

package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/ytclip-cli/styles"
)

// Theme returns a custom huh theme that matches the CLI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Blue).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Magenta).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Gray)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Yellow)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Blue)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Cream)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(styles.Cream).
		Background(styles.Blue).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Gray).
		Padding(0, 1)

	// Blurred fields mirror the focused layout without the accent border
	t.Blurred.Base = t.Blurred.Base.PaddingLeft(2)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Gray)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Gray)

	return t
}

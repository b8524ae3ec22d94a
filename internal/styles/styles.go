// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// MintUp brand palette.
var (
	ColorNavy  = lipgloss.Color("#0f2a44")
	ColorGreen = lipgloss.Color("#3ecf8e")
	ColorTeal  = lipgloss.Color("#2dd4bf")
	ColorMuted = lipgloss.Color("#64748b")
	ColorText  = lipgloss.Color("#e2e8f0")
	ColorWhite = lipgloss.Color("#ffffff")
)

// Brand is the product name shown in the header.
const Brand = "MintUp AI"

// BrandStyle styles the product name.
var BrandStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// FormTheme returns the huh theme used by interactive CLI forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorGreen).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorGreen)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorGreen).Foreground(ColorNavy)

	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)

	return t
}

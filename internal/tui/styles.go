// Package tui implements the Bubble Tea dashboard for mintup.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
	"github.com/mintup/mintup/internal/styles"
)

// Layout constants.
const (
	sidebarWidth  = 22 // sidebar column including its right margin
	cardChrome    = 6  // card border (2) and horizontal padding (4)
	headerHeight  = 1
	footerHeight  = 1
	defaultWidth  = 100
	defaultHeight = 40
)

var (
	colorNavy  = styles.ColorNavy
	colorGreen = styles.ColorGreen
	colorTeal  = styles.ColorTeal
	colorMuted = styles.ColorMuted
	colorText  = styles.ColorText
	colorWhite = styles.ColorWhite
	colorTask  = lipgloss.Color("#94a3b8")
)

// Chrome styles.
var (
	headerStyle = lipgloss.NewStyle().
			Background(colorNavy).
			Foreground(colorWhite).
			Padding(0, 1)

	headerHintStyle = lipgloss.NewStyle().
			Background(colorNavy).
			Foreground(colorMuted)

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth - 2).
			MarginRight(2)

	navItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	navActiveStyle = lipgloss.NewStyle().
			Background(colorGreen).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTeal).
			Padding(0, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Background(colorGreen).
			Foreground(colorWhite).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			PaddingLeft(1)
)

// Section styles.
var (
	innerCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	statValueStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	unreadStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	nextActionStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	dayStyle = lipgloss.NewStyle().
			Bold(true)
)

// eventStyles colours calendar entries by kind.
var eventStyles = map[fixtures.EventKind]lipgloss.Style{
	fixtures.EventMeeting: lipgloss.NewStyle().Foreground(colorTeal),
	fixtures.EventPayment: lipgloss.NewStyle().Foreground(colorGreen),
	fixtures.EventTask:    lipgloss.NewStyle().Foreground(colorTask),
}

// eventIcons are the notification glyphs by kind.
var eventIcons = map[fixtures.EventKind]string{
	fixtures.EventMeeting: "🤝",
	fixtures.EventPayment: "💰",
	fixtures.EventTask:    "✓",
}

// Modal styles.
var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// Date layouts matching the short US locale formats of the web app.
const (
	dateLayout = "1/2/2006"
	timeLayout = "3:04 PM"
)

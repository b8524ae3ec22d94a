package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
)

func renderNotifications(width int) string {
	events := fixtures.Events()
	cards := make([]string, 0, len(events))
	for _, e := range events {
		icon := eventStyles[e.Kind].Render(eventIcons[e.Kind])
		body := lipgloss.JoinVertical(lipgloss.Left,
			unreadStyle.Render(e.Title),
			mutedStyle.Render(e.Date.Format(dateLayout)),
		)
		row := lipgloss.JoinHorizontal(lipgloss.Center, icon, "  ", body)
		cards = append(cards, innerCardStyle.Width(width - 4).Render(row))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

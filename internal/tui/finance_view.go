package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
)

const financeCardGap = 2

func renderFinance(width int) string {
	summary := fixtures.Summary()
	cards := summary.Cards()

	// Each inner card has a border (2) and padding (2) around its content.
	cardWidth := max(14, (width-financeCardGap*(len(cards)-1))/len(cards)-4)
	rendered := make([]string, 0, 2*len(cards))
	for i, c := range cards {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", financeCardGap))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render(c.Title),
			statValueStyle.Render(c.Value),
			mutedStyle.Render(c.Caption),
		)
		rendered = append(rendered, innerCardStyle.Width(cardWidth).Render(body))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	return lipgloss.JoinVertical(lipgloss.Left, row, "", renderExpenses(width))
}

func renderExpenses(width int) string {
	inner := width - 4
	lines := []string{cardTitleStyle.Render("Expense Breakdown")}
	for _, e := range fixtures.Expenses() {
		// Expense rows show plain dollars; only the summary cards group digits.
		amount := accentStyle.Render("$" + strconv.Itoa(e.Amount))
		category := lipgloss.NewStyle().
			Width(max(1, inner-lipgloss.Width(amount))).
			Render(e.Category)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, category, amount))
	}
	return innerCardStyle.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

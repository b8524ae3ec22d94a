package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
)

const (
	calendarDays    = 31
	calendarColumns = 7
)

// calendarDay is one cell of the month grid.
type calendarDay struct {
	Day    int
	Events []fixtures.Event
}

// monthGrid lays days 1-31 out in rows of seven.
func monthGrid() [][]calendarDay {
	var rows [][]calendarDay
	for start := 1; start <= calendarDays; start += calendarColumns {
		var row []calendarDay
		for d := start; d < start+calendarColumns && d <= calendarDays; d++ {
			row = append(row, calendarDay{Day: d, Events: fixtures.EventsOn(d)})
		}
		rows = append(rows, row)
	}
	return rows
}

func renderCalendar(width int) string {
	cellWidth := max(6, width/calendarColumns)
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		PaddingRight(1).
		Height(3)

	divider := mutedStyle.Render(strings.Repeat("─", cellWidth*calendarColumns))

	rows := make([]string, 0, 2*len(monthGrid()))
	for i, row := range monthGrid() {
		cells := make([]string, 0, len(row))
		for _, d := range row {
			lines := []string{dayStyle.Render(strconv.Itoa(d.Day))}
			for _, e := range d.Events {
				lines = append(lines, eventStyles[e.Kind].Render(e.Title))
			}
			cells = append(cells, cell.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		}
		if i > 0 {
			rows = append(rows, divider)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

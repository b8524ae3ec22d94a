package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintup/mintup/internal/core/dashboard"
)

// tabView renders one dashboard section. HandleKey receives keys the model
// does not consume itself while the view's tab is active.
type tabView interface {
	View(width int) string
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

// inputView is implemented by views that own a text input. While the input
// is focused every key except ctrl+c and esc goes to the view.
type inputView interface {
	tabView
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// staticView adapts a render function to tabView for sections without
// interaction.
type staticView func(width int) string

func (f staticView) View(width int) string { return f(width) }

func (staticView) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// viewTable maps every tab to its renderer.
type viewTable map[dashboard.Tab]tabView

// newViewTable builds the renderer for each tab.
func newViewTable(chat *ChatView, email *EmailView, memory *MemoryView) viewTable {
	return viewTable{
		dashboard.TabChat:          chat,
		dashboard.TabCalendar:      staticView(renderCalendar),
		dashboard.TabFinance:       staticView(renderFinance),
		dashboard.TabNotifications: staticView(renderNotifications),
		dashboard.TabEmail:         email,
		dashboard.TabMemory:        memory,
	}
}

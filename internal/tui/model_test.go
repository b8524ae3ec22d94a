package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintup/mintup/internal/core/config"
	"github.com/mintup/mintup/internal/core/dashboard"
)

// keyMsg builds a key press the way Bubble Tea reports it.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	return &cfg
}

func newTestModel(t *testing.T, width int) Model {
	t.Helper()
	cfg := testConfig()
	nop := zerolog.Nop()
	m := New(cfg, Options{Logger: &nop})
	return update(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

// sectionMarkers is text that only the named tab's view renders.
var sectionMarkers = map[dashboard.Tab]string{
	dashboard.TabChat:          "help you today",
	dashboard.TabCalendar:      "28",
	dashboard.TabFinance:       "Expense Breakdown",
	dashboard.TabNotifications: "🤝",
	dashboard.TabEmail:         "Compose",
	dashboard.TabMemory:        "Search stored memories",
}

func TestModel_Defaults(t *testing.T) {
	m := newTestModel(t, 120)

	assert.Equal(t, dashboard.TabChat, m.ActiveTab())
	assert.False(t, m.MenuOpen())

	view := m.View()
	assert.Contains(t, view, "MintUp AI")
	assert.Contains(t, view, "AI Assistant")
	assert.Contains(t, view, "No messages yet.")
}

func TestModel_StartTab(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultTab = "finance"
	nop := zerolog.Nop()

	assert.Equal(t, dashboard.TabFinance, New(cfg, Options{Logger: &nop}).ActiveTab())
	assert.Equal(t, dashboard.TabEmail, New(cfg, Options{StartTab: dashboard.TabEmail, Logger: &nop}).ActiveTab())
}

func TestModel_RendersOnlyActiveSection(t *testing.T) {
	for _, tab := range dashboard.Tabs() {
		t.Run(tab.String(), func(t *testing.T) {
			m := newTestModel(t, 120).SelectTab(tab)
			view := m.View()

			assert.Contains(t, view, tab.Title())
			for other, marker := range sectionMarkers {
				if other == tab {
					assert.Contains(t, view, marker)
				} else {
					assert.NotContains(t, view, marker, "section %s leaked into %s", other, tab)
				}
			}
		})
	}
}

func TestModel_SidebarListsTabs(t *testing.T) {
	view := newTestModel(t, 120).View()
	for _, tab := range dashboard.Tabs() {
		assert.Contains(t, view, tab.Label())
	}
}

func TestModel_JumpKeys(t *testing.T) {
	m := newTestModel(t, 120)
	for i, tab := range dashboard.Tabs() {
		m = press(t, m, string(rune('1'+i)))
		assert.Equal(t, tab, m.ActiveTab())
	}
}

func TestModel_TabCycling(t *testing.T) {
	m := newTestModel(t, 120)

	m = press(t, m, "tab")
	assert.Equal(t, dashboard.TabCalendar, m.ActiveTab())

	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, dashboard.TabMemory, m.ActiveTab())

	m = press(t, m, "tab")
	assert.Equal(t, dashboard.TabChat, m.ActiveTab())
}

func TestModel_SelectActiveTabIsNoop(t *testing.T) {
	m := newTestModel(t, 120).SelectTab(dashboard.TabEmail)
	before := m.View()

	m = m.SelectTab(dashboard.TabEmail)
	assert.Equal(t, dashboard.TabEmail, m.ActiveTab())
	assert.Equal(t, before, m.View())
}

func TestModel_MenuToggle(t *testing.T) {
	m := newTestModel(t, 120)

	m = press(t, m, "m")
	assert.True(t, m.MenuOpen())

	m = press(t, m, "m")
	assert.False(t, m.MenuOpen())

	m = m.ToggleMenu().ToggleMenu()
	assert.False(t, m.MenuOpen())
	assert.Equal(t, dashboard.TabChat, m.ActiveTab())
}

func TestModel_NarrowSidebarFollowsMenu(t *testing.T) {
	m := newTestModel(t, 80)

	closed := m.View()
	assert.NotContains(t, closed, "Memory Bank")
	assert.Contains(t, closed, "☰")

	opened := press(t, m, "m").View()
	assert.Contains(t, opened, "Memory Bank")
	assert.NotContains(t, opened, "☰")
}

func TestModel_FinanceExample(t *testing.T) {
	m := press(t, newTestModel(t, 120), "3")
	view := m.View()

	for _, want := range []string{
		"Financial Overview",
		"Monthly Spend", "$1,750", "This Month",
		"Budget Status", "On Track", "15% under budget",
		"Upcoming Bills", "Next 7 days",
		"Housing", "$1500", "Utilities", "$200", "Subscriptions", "$50",
	} {
		assert.Contains(t, view, want)
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			updated, cmd := newTestModel(t, 120).Update(keyMsg(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, updated.View())
		})
	}
}

func TestModel_InputFocusSwallowsKeys(t *testing.T) {
	m := press(t, newTestModel(t, 120), "/")
	require.True(t, m.chat.Focused())

	m = press(t, m, "q", "m", "2")
	assert.Equal(t, "qm2", m.chat.Value())
	assert.Equal(t, dashboard.TabChat, m.ActiveTab())
	assert.False(t, m.MenuOpen())
	assert.Contains(t, m.View(), "done typing")

	m = press(t, m, "esc")
	assert.False(t, m.chat.Focused())

	m = press(t, m, "2")
	assert.Equal(t, dashboard.TabCalendar, m.ActiveTab())
}

func TestModel_ChatEnterClearsInput(t *testing.T) {
	m := press(t, newTestModel(t, 120), "i", "h", "i")
	require.Equal(t, "hi", m.chat.Value())

	m = press(t, m, "enter")
	assert.Empty(t, m.chat.Value())
	assert.True(t, m.chat.Focused())
}

func TestModel_FocusIgnoredWithoutInput(t *testing.T) {
	m := press(t, newTestModel(t, 120), "3", "/", "q")
	assert.Empty(t, m.View(), "q should quit when no input is focused")
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, 120)
	assert.NotContains(t, m.View(), "prev tab")

	m = press(t, m, "?")
	assert.Contains(t, m.View(), "prev tab")
}

func TestSnapshot(t *testing.T) {
	cfg := testConfig()

	out := Snapshot(cfg, dashboard.TabNotifications, 120, 0)
	assert.Contains(t, out, "Notifications")
	assert.Contains(t, out, "Business Meeting")
	assert.Contains(t, out, "2/4/2025")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 120)
	}
}

func TestSnapshot_NarrowChatFitsWidth(t *testing.T) {
	out := Snapshot(testConfig(), dashboard.TabChat, 40, 0)

	assert.Contains(t, out, "Send")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, "line overflows: %q", line)
	}
}

func TestModel_InputWidthFollowsLayout(t *testing.T) {
	m := newTestModel(t, 120)
	wide := m.chat.input.Width

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	narrow := m.chat.input.Width
	assert.Less(t, narrow, wide)

	m = press(t, m, "m")
	assert.Less(t, m.chat.input.Width, narrow, "an opened sidebar takes room from the card")

	m = m.ToggleMenu()
	assert.Equal(t, narrow, m.chat.input.Width)
}

func TestModel_ViewDoesNotResizeInputs(t *testing.T) {
	m := newTestModel(t, 120)
	chatWidth, memoryWidth := m.chat.input.Width, m.memory.search.Width

	_ = m.View()
	_ = m.SelectTab(dashboard.TabMemory).View()

	assert.Equal(t, chatWidth, m.chat.input.Width)
	assert.Equal(t, memoryWidth, m.memory.search.Width)
}

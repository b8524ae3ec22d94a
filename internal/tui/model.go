package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mintup/mintup/internal/core/config"
	"github.com/mintup/mintup/internal/core/dashboard"
	"github.com/mintup/mintup/internal/styles"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	statePreviewingEmail
)

// Options configures the TUI behavior.
type Options struct {
	StartTab dashboard.Tab   // overrides the configured default tab when set
	Logger   *zerolog.Logger // defaults to the global logger with component=tui
}

// Model is the main Bubble Tea model for the dashboard.
type Model struct {
	cfg      *config.Config
	router   dashboard.Router
	keys     KeyMap
	help     help.Model
	logger   zerolog.Logger
	state    UIState
	width    int
	height   int
	quitting bool

	chat    *ChatView
	email   *EmailView
	memory  *MemoryView
	views   viewTable
	preview EmailPreviewModal
}

// New creates a new TUI model.
func New(cfg *config.Config, opts Options) Model {
	logger := log.With().Str("component", "tui").Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	start := cfg.StartTab()
	if opts.StartTab != "" {
		start = opts.StartTab
	}

	keys := NewKeyMap(cfg.TabKeys())

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = mutedStyle
	h.Styles.ShortDesc = mutedStyle
	h.Styles.ShortSeparator = mutedStyle
	h.Styles.FullKey = mutedStyle
	h.Styles.FullDesc = mutedStyle
	h.Styles.FullSeparator = mutedStyle

	chat := NewChatView(logger)
	email := NewEmailView(keys)
	memory := NewMemoryView(keys)

	m := Model{
		cfg:    cfg,
		router: dashboard.NewRouterAt(start),
		keys:   keys,
		help:   h,
		logger: logger,
		state:  stateNormal,
		chat:   chat,
		email:  email,
		memory: memory,
		views:  newViewTable(chat, email, memory),
	}
	m.resizeInputs()
	return m
}

// ActiveTab returns the selected tab.
func (m Model) ActiveTab() dashboard.Tab { return m.router.Active() }

// MenuOpen reports whether the menu is open.
func (m Model) MenuOpen() bool { return m.router.MenuOpen() }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-footerStyle.GetHorizontalFrameSize())
		m.resizeInputs()
		return m, nil

	case openEmailMsg:
		m.state = statePreviewingEmail
		m.preview = NewEmailPreviewModal(msg.email, m.cfg.GlamourStyle, m.screenWidth(), m.screenHeight())
		m.logger.Debug().Str("sender", msg.email.Sender).Msg("email preview opened")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state == statePreviewingEmail {
		return m.handlePreviewKey(msg)
	}

	if iv, ok := m.activeInput(); ok && iv.Focused() {
		return m.handleInputKey(iv, msg)
	}

	return m.handleNormalKey(msg)
}

// handlePreviewKey handles keys while the email preview is open.
func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.preview.ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.preview.ScrollDown()
	case key.Matches(msg, m.keys.Blur), key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Quit):
		m.state = stateNormal
	}
	return m, nil
}

// handleInputKey routes keys to a focused text input; esc leaves it.
func (m Model) handleInputKey(iv inputView, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		iv.Blur()
		return m, nil
	}
	return m, iv.HandleKey(msg)
}

// handleNormalKey handles navigation keys and passes the rest to the active
// view.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.router.Next()
		m.logTab()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.router.Prev()
		m.logTab()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		open := m.router.ToggleMenu()
		m.resizeInputs()
		m.logger.Debug().Bool("open", open).Msg("menu toggled")
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if iv, ok := m.activeInput(); ok {
			return m, iv.Focus()
		}
		return m, nil
	}

	if tab, ok := m.keys.JumpTarget(msg); ok {
		return m.SelectTab(tab), nil
	}

	return m, m.views[m.router.Active()].HandleKey(msg)
}

// SelectTab activates tab. Selecting the active tab changes nothing.
func (m Model) SelectTab(tab dashboard.Tab) Model {
	if m.router.SelectTab(tab) {
		m.logTab()
	}
	return m
}

// ToggleMenu flips the menu flag.
func (m Model) ToggleMenu() Model {
	m.router.ToggleMenu()
	m.resizeInputs()
	return m
}

func (m Model) logTab() {
	m.logger.Debug().Str("tab", m.router.Active().String()).Msg("tab selected")
}

// activeInput returns the active view's text input, if it has one.
func (m Model) activeInput() (inputView, bool) {
	iv, ok := m.views[m.router.Active()].(inputView)
	return iv, ok
}

func (m Model) screenWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) screenHeight() int {
	if m.height == 0 {
		return defaultHeight
	}
	return m.height
}

// contentWidth is the width available to the active view inside the card.
func (m Model) contentWidth() int {
	w := m.screenWidth()
	if m.sidebarVisible() {
		w -= sidebarWidth
	}
	return max(20, w-cardChrome)
}

// resizeInputs sizes the text inputs to the current content width. Call it
// whenever the layout changes; View only reads the widths.
func (m Model) resizeInputs() {
	w := m.contentWidth()
	m.chat.SetWidth(w)
	m.memory.SetWidth(w)
}

// sidebarVisible mirrors the web layout: the sidebar is always shown on wide
// screens and only when the menu is open on narrow ones.
func (m Model) sidebarVisible() bool {
	return m.router.MenuOpen() || m.screenWidth() >= m.cfg.SidebarBreakpoint
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.screenWidth(), m.screenHeight()

	if m.state == statePreviewingEmail {
		return m.preview.View(w, h)
	}

	body := m.renderCard()
	if m.sidebarVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}

	// Pin the footer to the bottom once the terminal size is known.
	if m.height > 0 {
		body = lipgloss.NewStyle().Height(max(1, h-headerHeight-footerHeight)).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(w), body, m.renderFooter())
}

// renderHeader renders the top navigation bar.
func (m Model) renderHeader(width int) string {
	left := styles.BrandStyle.Background(colorNavy).Render(styles.Brand)
	if !m.router.MenuOpen() && width < m.cfg.SidebarBreakpoint {
		left = headerHintStyle.Render("☰ ") + left
	}
	right := headerHintStyle.Render("⚙")

	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	line := left + headerHintStyle.Render(strings.Repeat(" ", gap)) + right
	return headerStyle.Width(width).Render(line)
}

// renderSidebar renders the tab list with the active tab highlighted.
func (m Model) renderSidebar() string {
	items := make([]string, 0, len(dashboard.Tabs()))
	for _, tab := range dashboard.Tabs() {
		style := navItemStyle
		if tab == m.router.Active() {
			style = navActiveStyle
		}
		items = append(items, style.Width(sidebarWidth - 2).Render(tab.Label()))
	}
	return sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderCard renders the active tab's title and view inside a bordered card.
func (m Model) renderCard() string {
	inner := m.contentWidth()
	tab := m.router.Active()
	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(tab.Title()),
		m.views[tab].View(inner),
	)
	return cardStyle.Width(inner + cardChrome - 2).Render(content)
}

// renderFooter renders the help line.
func (m Model) renderFooter() string {
	typing := false
	if iv, ok := m.activeInput(); ok {
		typing = iv.Focused()
	}
	return footerStyle.Render(m.help.View(helpKeys{km: m.keys, tab: m.router.Active(), typing: typing}))
}

// Snapshot renders a single frame of the dashboard with tab active, for
// output outside an interactive terminal.
func Snapshot(cfg *config.Config, tab dashboard.Tab, width, height int) string {
	nop := zerolog.Nop()
	m := New(cfg, Options{StartTab: tab, Logger: &nop})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.View()
}

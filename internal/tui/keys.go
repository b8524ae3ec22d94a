package tui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mintup/mintup/internal/core/dashboard"
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
)

// KeyMap holds the dashboard keybindings.
type KeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Menu      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Focus     key.Binding
	Blur      key.Binding

	// Section keys, only active on their tab.
	Up         key.Binding
	Down       key.Binding
	NextFolder key.Binding
	PrevFolder key.Binding
	Open       key.Binding
	CycleKind  key.Binding

	// Jump holds one binding per configured jump key, sorted by key.
	Jump []TabBinding
}

// TabBinding jumps straight to a tab.
type TabBinding struct {
	Binding key.Binding
	Tab     dashboard.Tab
}

// NewKeyMap builds the keymap. jump maps keys to the tab they select.
func NewKeyMap(jump map[string]dashboard.Tab) KeyMap {
	km := KeyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		Focus:      key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "type")),
		Blur:       key.NewBinding(key.WithKeys(keyEsc), key.WithHelp("esc", "done typing")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextFolder: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next folder")),
		PrevFolder: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev folder")),
		Open:       key.NewBinding(key.WithKeys(keyEnter), key.WithHelp("enter", "open")),
		CycleKind:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter type")),
	}

	for _, k := range slices.Sorted(maps.Keys(jump)) {
		tab := jump[k]
		km.Jump = append(km.Jump, TabBinding{
			Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(k, tab.Label())),
			Tab:     tab,
		})
	}

	return km
}

// JumpTarget returns the tab bound to msg, if any.
func (km KeyMap) JumpTarget(msg tea.KeyMsg) (dashboard.Tab, bool) {
	for _, j := range km.Jump {
		if key.Matches(msg, j.Binding) {
			return j.Tab, true
		}
	}
	return "", false
}

// helpKeys adapts the keymap to help.KeyMap for the active tab and focus.
type helpKeys struct {
	km     KeyMap
	tab    dashboard.Tab
	typing bool
}

func (h helpKeys) ShortHelp() []key.Binding {
	if h.typing {
		return []key.Binding{h.km.Blur}
	}
	bindings := []key.Binding{h.km.NextTab, h.km.Menu}
	bindings = append(bindings, h.sectionKeys()...)
	return append(bindings, h.km.Help, h.km.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	jump := make([]key.Binding, 0, len(h.km.Jump))
	for _, j := range h.km.Jump {
		jump = append(jump, j.Binding)
	}
	return [][]key.Binding{
		{h.km.NextTab, h.km.PrevTab, h.km.Menu},
		jump,
		h.sectionKeys(),
		{h.km.Help, h.km.Quit},
	}
}

// sectionKeys are the keys handled by the active tab's view.
func (h helpKeys) sectionKeys() []key.Binding {
	switch h.tab {
	case dashboard.TabChat:
		return []key.Binding{h.km.Focus}
	case dashboard.TabEmail:
		return []key.Binding{h.km.Down, h.km.NextFolder, h.km.Open}
	case dashboard.TabMemory:
		return []key.Binding{h.km.Focus, h.km.CycleKind}
	default:
		return nil
	}
}

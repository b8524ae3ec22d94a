package tui

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
)

const (
	memoryPlaceholder = "Search stored memories..."
	memoryColumns     = 2
	memoryColumnGap   = 2
)

// kindFilterLabels are the type filter options. Index 0 is "all".
var kindFilterLabels = []string{"All Types", "Subscriptions", "Contacts", "Preferences"}

// MemoryView lists memory bank entries with a search box and type filter.
type MemoryView struct {
	keys   KeyMap
	search textinput.Model
	kind   int // index into kindFilterLabels
}

// NewMemoryView creates the memory bank section.
func NewMemoryView(keys KeyMap) *MemoryView {
	ti := textinput.New()
	ti.Placeholder = memoryPlaceholder
	ti.Prompt = "⌕ "
	ti.PlaceholderStyle = mutedStyle
	ti.Width = len(memoryPlaceholder) + 1

	return &MemoryView{keys: keys, search: ti}
}

// SetWidth fits the search row into width columns, leaving room for the
// widest filter label so cycling the filter never moves the input.
func (v *MemoryView) SetWidth(width int) {
	filter := 0
	for _, label := range kindFilterLabels {
		filter = max(filter, lipgloss.Width(renderKindFilter(label)))
	}
	v.search.Width = max(1, width-filter-6)
}

// Focus focuses the search input.
func (v *MemoryView) Focus() tea.Cmd { return v.search.Focus() }

// Blur removes focus from the search input.
func (v *MemoryView) Blur() { v.search.Blur() }

// Focused reports whether the search input has focus.
func (v *MemoryView) Focused() bool { return v.search.Focused() }

// Query returns the current search text.
func (v *MemoryView) Query() string { return v.search.Value() }

// SetQuery replaces the search text.
func (v *MemoryView) SetQuery(q string) { v.search.SetValue(q) }

// KindFilter returns the label of the active type filter.
func (v *MemoryView) KindFilter() string { return kindFilterLabels[v.kind] }

// CycleKind advances the type filter.
func (v *MemoryView) CycleKind() {
	v.kind = (v.kind + 1) % len(kindFilterLabels)
}

// Results returns the memories matching the type filter and search text.
func (v *MemoryView) Results() []fixtures.Memory {
	var out []fixtures.Memory
	for _, m := range fixtures.Memories() {
		if v.kind > 0 && m.Kind != fixtures.MemoryKinds[v.kind-1] {
			continue
		}
		if !matchMemory(m, v.search.Value()) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matchMemory reports whether query matches the memory's kind or detail.
// Queries containing glob metacharacters are matched as patterns against the
// whole field, anything else as a case-insensitive substring.
func matchMemory(m fixtures.Memory, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	fields := []string{strings.ToLower(m.Detail), string(m.Kind)}
	if strings.ContainsAny(query, "*?[{") {
		if !doublestar.ValidatePattern(query) {
			return false
		}
		for _, f := range fields {
			// Slashes in details ("$15.99/month") are text, not path separators.
			if ok, _ := doublestar.Match(query, strings.ReplaceAll(f, "/", " ")); ok {
				return true
			}
		}
		return false
	}

	for _, f := range fields {
		if strings.Contains(f, query) {
			return true
		}
	}
	return false
}

// HandleKey edits the search while focused; otherwise cycles the type filter.
func (v *MemoryView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if v.search.Focused() {
		if msg.String() == keyEnter {
			v.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return cmd
	}

	if key.Matches(msg, v.keys.CycleKind) {
		v.CycleKind()
	}
	return nil
}

// View renders the search row and the memory cards in two columns.
func (v *MemoryView) View(width int) string {
	filter := renderKindFilter(v.KindFilter())
	controls := lipgloss.JoinHorizontal(lipgloss.Center, v.search.View(), " ", filter)

	results := v.Results()
	if len(results) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, controls, "", emptyStyle.Render("No memories match."))
	}

	colWidth := max(20, (width-memoryColumnGap)/memoryColumns-2)
	var rows []string
	for i := 0; i < len(results); i += memoryColumns {
		var cells []string
		for j := i; j < i+memoryColumns && j < len(results); j++ {
			if j > i {
				cells = append(cells, strings.Repeat(" ", memoryColumnGap))
			}
			cells = append(cells, renderMemoryCard(results[j], colWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{controls, ""}, rows...)...)
}

func renderMemoryCard(m fixtures.Memory, width int) string {
	inner := width - 2
	stored := mutedStyle.Render("Stored: " + m.Stored.Format(dateLayout))
	kind := unreadStyle.
		Width(max(1, inner-lipgloss.Width(stored))).
		Render(capitalize(string(m.Kind)))

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, kind, stored),
		lipgloss.NewStyle().Width(inner).Render(m.Detail),
	}
	if m.HasNextAction() {
		lines = append(lines, nextActionStyle.Render("Next action: "+m.NextAction.Format(dateLayout)))
	}

	return innerCardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func renderKindFilter(label string) string {
	return innerCardStyle.Render(label + " ▾")
}

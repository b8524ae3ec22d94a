package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
)

// Email preview modal layout constants.
const (
	previewModalMaxWidth  = 90 // maximum modal width in columns
	previewModalMaxHeight = 24 // maximum modal height in rows
	previewModalMargin    = 4  // margin from screen edges
	previewModalChrome    = 6  // rows for title, help and spacing
	previewModalPadding   = 4  // padding inside content area
	glamourGutter         = 2  // glamour adds gutter space
)

// EmailPreviewModal shows one message rendered as markdown.
type EmailPreviewModal struct {
	email    fixtures.Email
	viewport viewport.Model
}

// NewEmailPreviewModal creates a preview sized for a width x height screen.
func NewEmailPreviewModal(email fixtures.Email, style string, width, height int) EmailPreviewModal {
	modalWidth := min(width-previewModalMargin, previewModalMaxWidth)
	modalHeight := min(height-previewModalMargin, previewModalMaxHeight)

	vp := viewport.New(modalWidth-previewModalPadding, max(1, modalHeight-previewModalChrome))
	vp.SetContent(renderEmailMarkdown(email, style, modalWidth-previewModalPadding-glamourGutter))

	return EmailPreviewModal{email: email, viewport: vp}
}

// emailMarkdown formats a message as a markdown document.
func emailMarkdown(e fixtures.Email) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", e.Subject)
	fmt.Fprintf(&b, "**From:** %s  \n", e.Sender)
	fmt.Fprintf(&b, "**Received:** %s %s\n\n", e.Date.Format(dateLayout), e.Date.Format(timeLayout))
	// The preview text contains literal asterisks (masked account numbers).
	b.WriteString(strings.ReplaceAll(e.Preview, "*", `\*`))
	b.WriteString("\n")
	return b.String()
}

// renderEmailMarkdown renders the message with glamour, falling back to the
// raw markdown if the renderer cannot be built.
func renderEmailMarkdown(e fixtures.Email, style string, width int) string {
	md := emailMarkdown(e)

	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(max(20, width)))
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(rendered, "\n")
}

// Email returns the message being previewed.
func (m EmailPreviewModal) Email() fixtures.Email { return m.email }

// ScrollUp scrolls the content up one line.
func (m *EmailPreviewModal) ScrollUp() { m.viewport.ScrollUp(1) }

// ScrollDown scrolls the content down one line.
func (m *EmailPreviewModal) ScrollDown() { m.viewport.ScrollDown(1) }

// View renders the modal centered on a width x height screen.
func (m EmailPreviewModal) View(width, height int) string {
	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = mutedStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		modalTitleStyle.Render(m.email.Sender)+scrollInfo,
		"",
		m.viewport.View(),
		modalHelpStyle.Render("[↑/↓/j/k] scroll  [enter/esc] close"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}

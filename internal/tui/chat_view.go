package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	chatPlaceholder   = "How can I help you today?"
	chatTranscriptMin = 8 // rows reserved for the transcript area
	chatSendLabel     = "Send"
)

var chatTranscriptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorTeal).
	Padding(0, 1)

// ChatView shows the assistant transcript and the message input. There is
// no assistant behind it: sending clears the input.
type ChatView struct {
	input  textinput.Model
	logger zerolog.Logger
}

// NewChatView creates the chat section.
func NewChatView(logger zerolog.Logger) *ChatView {
	ti := textinput.New()
	ti.Placeholder = chatPlaceholder
	ti.Prompt = "› "
	ti.PlaceholderStyle = mutedStyle
	ti.Width = len(chatPlaceholder) + 1

	return &ChatView{input: ti, logger: logger}
}

// Focus focuses the message input.
func (v *ChatView) Focus() tea.Cmd { return v.input.Focus() }

// Blur removes focus from the message input.
func (v *ChatView) Blur() { v.input.Blur() }

// Focused reports whether the message input has focus.
func (v *ChatView) Focused() bool { return v.input.Focused() }

// SetWidth fits the input row into width columns. The placeholder is cut
// short when the row is narrower than it.
func (v *ChatView) SetWidth(width int) {
	send := lipgloss.Width(buttonStyle.Render(chatSendLabel))
	// prompt (2), cursor cell (1) and the gap before the button (1), plus slack
	v.input.Width = max(1, width-send-6)
}

// Value returns the current input text.
func (v *ChatView) Value() string { return v.input.Value() }

// HandleKey edits the input while focused. Enter sends, which only clears
// the input.
func (v *ChatView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !v.input.Focused() {
		return nil
	}
	if msg.String() == keyEnter {
		if text := v.input.Value(); text != "" {
			v.logger.Debug().Int("length", len(text)).Msg("chat message sent")
			v.input.Reset()
		}
		return nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

// View renders the transcript area and input row.
func (v *ChatView) View(width int) string {
	transcript := chatTranscriptStyle.
		Width(width - 2).
		Height(chatTranscriptMin).
		Render(emptyStyle.Render("No messages yet."))

	send := buttonStyle.Render(chatSendLabel)
	input := lipgloss.JoinHorizontal(lipgloss.Center, v.input.View(), " ", send)

	return lipgloss.JoinVertical(lipgloss.Left, transcript, "", input)
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mintup/mintup/internal/core/fixtures"
)

// Folder is a mailbox folder in the email section.
type Folder int

const (
	FolderInbox Folder = iota
	FolderStarred
	FolderSent
	FolderDrafts
)

var folderNames = []string{"Inbox", "Starred", "Sent", "Drafts"}

func (f Folder) String() string { return folderNames[f] }

const emailSidebarWidth = 16

// openEmailMsg asks the model to show the preview modal.
type openEmailMsg struct {
	email fixtures.Email
}

// EmailView lists messages for the selected folder.
type EmailView struct {
	keys   KeyMap
	folder Folder
	cursor int
}

// NewEmailView creates the email section showing the inbox.
func NewEmailView(keys KeyMap) *EmailView {
	return &EmailView{keys: keys, folder: FolderInbox}
}

// Folder returns the selected folder.
func (v *EmailView) Folder() Folder { return v.folder }

// Messages returns the messages in the selected folder. Sent and Drafts are
// always empty.
func (v *EmailView) Messages() []fixtures.Email {
	switch v.folder {
	case FolderInbox:
		return fixtures.Emails()
	case FolderStarred:
		var out []fixtures.Email
		for _, e := range fixtures.Emails() {
			if e.Starred {
				out = append(out, e)
			}
		}
		return out
	default:
		return nil
	}
}

// Selected returns the message under the cursor.
func (v *EmailView) Selected() (fixtures.Email, bool) {
	msgs := v.Messages()
	if v.cursor < 0 || v.cursor >= len(msgs) {
		return fixtures.Email{}, false
	}
	return msgs[v.cursor], true
}

// SelectFolder switches folder and resets the cursor.
func (v *EmailView) SelectFolder(f Folder) {
	v.folder = Folder((int(f) + len(folderNames)) % len(folderNames))
	v.cursor = 0
}

// HandleKey moves the cursor, switches folders and opens messages.
func (v *EmailView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.Messages())-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.NextFolder):
		v.SelectFolder(v.folder + 1)
	case key.Matches(msg, v.keys.PrevFolder):
		v.SelectFolder(v.folder - 1)
	case key.Matches(msg, v.keys.Open):
		if email, ok := v.Selected(); ok {
			return func() tea.Msg { return openEmailMsg{email: email} }
		}
	}
	return nil
}

// View renders the folder column and the message list.
func (v *EmailView) View(width int) string {
	folders := []string{buttonStyle.Render("Compose"), ""}
	for i, name := range folderNames {
		if Folder(i) == v.folder {
			folders = append(folders, selectedRowStyle.Render("▌"+name))
		} else {
			folders = append(folders, navItemStyle.Render(name))
		}
	}
	sidebar := lipgloss.NewStyle().
		Width(emailSidebarWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, folders...))

	listWidth := max(20, width-emailSidebarWidth-1)
	list := v.renderList(listWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", list)
}

func (v *EmailView) renderList(width int) string {
	msgs := v.Messages()
	if len(msgs) == 0 {
		return emptyStyle.Render("No messages in " + v.folder.String() + ".")
	}

	rows := make([]string, 0, 2*len(msgs))
	for i, e := range msgs {
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, v.renderMessage(e, i == v.cursor, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *EmailView) renderMessage(e fixtures.Email, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = selectedRowStyle.Render("› ")
	}
	inner := width - lipgloss.Width(marker)

	senderStyle := mutedStyle
	if !e.Read {
		senderStyle = unreadStyle
	}
	when := mutedStyle.Render(e.Date.Format(timeLayout))
	sender := senderStyle.Width(max(1, inner-lipgloss.Width(when))).Render(e.Sender)

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sender, when),
		unreadStyle.UnsetBold().Render(e.Subject),
		mutedStyle.MaxWidth(inner).Render(e.Preview),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, body)
}

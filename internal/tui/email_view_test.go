package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintup/mintup/internal/core/dashboard"
)

func newTestEmailView() *EmailView {
	return NewEmailView(NewKeyMap(testConfig().TabKeys()))
}

func TestEmailView_Folders(t *testing.T) {
	v := newTestEmailView()

	assert.Equal(t, FolderInbox, v.Folder())
	assert.Len(t, v.Messages(), 2)

	v.HandleKey(keyMsg("]"))
	assert.Equal(t, FolderStarred, v.Folder())
	starred := v.Messages()
	require.Len(t, starred, 1)
	assert.Equal(t, "Bank of America", starred[0].Sender)

	v.HandleKey(keyMsg("]"))
	assert.Equal(t, FolderSent, v.Folder())
	assert.Empty(t, v.Messages())
	assert.Contains(t, v.View(80), "No messages in Sent.")

	v.HandleKey(keyMsg("]"))
	v.HandleKey(keyMsg("]"))
	assert.Equal(t, FolderInbox, v.Folder(), "folders wrap around")

	v.HandleKey(keyMsg("["))
	assert.Equal(t, FolderDrafts, v.Folder())
}

func TestEmailView_Cursor(t *testing.T) {
	v := newTestEmailView()

	sel, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Bank of America", sel.Sender)

	v.HandleKey(keyMsg("j"))
	v.HandleKey(keyMsg("j"))
	sel, ok = v.Selected()
	require.True(t, ok)
	assert.Equal(t, "John Smith", sel.Sender, "cursor stops at the last message")

	v.HandleKey(keyMsg("k"))
	sel, _ = v.Selected()
	assert.Equal(t, "Bank of America", sel.Sender)

	v.HandleKey(keyMsg("j"))
	v.SelectFolder(FolderStarred)
	sel, ok = v.Selected()
	require.True(t, ok, "switching folders resets the cursor")
	assert.Equal(t, "Bank of America", sel.Sender)
}

func TestEmailView_Render(t *testing.T) {
	view := newTestEmailView().View(90)

	for _, want := range []string{
		"Compose", "Inbox", "Starred", "Sent", "Drafts",
		"Bank of America", "Your Monthly Statement", "9:15 AM",
		"John Smith", "Project Deadline Update", "2:30 PM",
	} {
		assert.Contains(t, view, want)
	}
}

func TestEmailView_EnterOpensPreview(t *testing.T) {
	v := newTestEmailView()
	v.HandleKey(keyMsg("j"))

	cmd := v.HandleKey(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(openEmailMsg)
	require.True(t, ok)
	assert.Equal(t, "John Smith", msg.email.Sender)

	v.SelectFolder(FolderSent)
	assert.Nil(t, v.HandleKey(keyMsg("enter")), "nothing to open in an empty folder")
}

func TestModel_EmailPreview(t *testing.T) {
	m := newTestModel(t, 120).SelectTab(dashboard.TabEmail)

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Bank of America")
	assert.Contains(t, view, "[enter/esc] close")
	assert.NotContains(t, view, "Compose")

	m = press(t, m, "j", "k", "q")
	assert.NotEmpty(t, m.View(), "q closes the preview instead of quitting")
	assert.Contains(t, m.View(), "Compose")
	assert.Equal(t, dashboard.TabEmail, m.ActiveTab())
}

func TestEmailMarkdown(t *testing.T) {
	emails := newTestEmailView().Messages()
	require.NotEmpty(t, emails)

	md := emailMarkdown(emails[0])
	assert.Contains(t, md, "## Your Monthly Statement")
	assert.Contains(t, md, "**From:** Bank of America")
	assert.Contains(t, md, "2/1/2025 9:15 AM")
}

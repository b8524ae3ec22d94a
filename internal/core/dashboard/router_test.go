package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_Defaults(t *testing.T) {
	r := NewRouter()

	assert.Equal(t, TabChat, r.Active())
	assert.Equal(t, "AI Assistant", r.Title())
	assert.False(t, r.MenuOpen())
}

func TestRouter_SelectTab(t *testing.T) {
	tests := []struct {
		tab   Tab
		label string
		title string
	}{
		{TabChat, "Chat", "AI Assistant"},
		{TabCalendar, "Calendar", "Calendar"},
		{TabFinance, "Finance", "Financial Overview"},
		{TabNotifications, "Notifications", "Notifications"},
		{TabEmail, "Email", "Important Communications"},
		{TabMemory, "Memory Bank", "Memory Bank"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			r := NewRouter()
			r.SelectTab(tt.tab)

			assert.Equal(t, tt.tab, r.Active())
			assert.Equal(t, tt.title, r.Title())
			assert.Equal(t, tt.label, tt.tab.Label())
		})
	}
}

func TestRouter_SelectTabTwiceIsNoop(t *testing.T) {
	r := NewRouter()

	assert.True(t, r.SelectTab(TabFinance))
	assert.False(t, r.SelectTab(TabFinance))
	assert.Equal(t, TabFinance, r.Active())
	assert.False(t, r.MenuOpen(), "selecting tabs must not touch the menu")
}

func TestRouter_SelectInvalidTabPanics(t *testing.T) {
	r := NewRouter()

	assert.Panics(t, func() { r.SelectTab(Tab("settings")) })
	assert.Equal(t, TabChat, r.Active())
}

func TestRouter_ToggleMenu(t *testing.T) {
	r := NewRouter()

	assert.True(t, r.ToggleMenu())
	assert.True(t, r.MenuOpen())
	assert.False(t, r.ToggleMenu())
	assert.False(t, r.MenuOpen())
	assert.Equal(t, TabChat, r.Active(), "toggling the menu must not change the tab")
}

func TestRouter_NextPrevWrap(t *testing.T) {
	r := NewRouter()

	assert.Equal(t, TabCalendar, r.Next())
	assert.Equal(t, TabChat, r.Prev())
	assert.Equal(t, TabMemory, r.Prev())
	assert.Equal(t, TabChat, r.Next())

	for range Tabs() {
		r.Next()
	}
	assert.Equal(t, TabChat, r.Active())
}

func TestNewRouterAt(t *testing.T) {
	r := NewRouterAt(TabEmail)
	assert.Equal(t, TabEmail, r.Active())

	assert.Panics(t, func() { NewRouterAt(Tab("")) })
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs() {
		got, err := ParseTab(string(tab))
		require.NoError(t, err)
		assert.Equal(t, tab, got)
	}

	got, err := ParseTab("  Finance ")
	require.NoError(t, err)
	assert.Equal(t, TabFinance, got)

	_, err = ParseTab("settings")
	require.ErrorIs(t, err, ErrUnknownTab)
	assert.Contains(t, err.Error(), `"settings"`)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = ParseTab("finanse")
	require.ErrorIs(t, err, ErrUnknownTab)
	assert.Contains(t, err.Error(), `did you mean "finance"?`)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want Tab
		ok   bool
	}{
		{in: "emial", want: TabEmail, ok: true},
		{in: "Calender", want: TabCalendar, ok: true},
		{in: "memroy", want: TabMemory, ok: true},
		{in: "chat", want: TabChat, ok: true},
		{in: "settings", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Suggest(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabs_OrderAndCopy(t *testing.T) {
	got := Tabs()
	require.Len(t, got, 6)
	assert.Equal(t, TabChat, got[0])
	assert.Equal(t, TabMemory, got[5])

	got[0] = TabEmail
	assert.Equal(t, TabChat, Tabs()[0], "Tabs must return a copy")

	for i, tab := range Tabs() {
		assert.Equal(t, i, tab.Index())
	}
}

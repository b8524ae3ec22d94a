// Package dashboard holds the navigation state of the MintUp dashboard: which
// section is active and whether the menu is open.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownTab is returned by ParseTab for identifiers outside the tab set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies one section of the dashboard.
type Tab string

const (
	TabChat          Tab = "chat"
	TabCalendar      Tab = "calendar"
	TabFinance       Tab = "finance"
	TabNotifications Tab = "notifications"
	TabEmail         Tab = "email"
	TabMemory        Tab = "memory"
)

// DefaultTab is the tab shown when the dashboard first renders.
const DefaultTab = TabChat

type tabInfo struct {
	label string // sidebar label
	title string // card title
}

// order is the sidebar order. It also drives Next and Prev.
var order = []Tab{
	TabChat,
	TabCalendar,
	TabFinance,
	TabNotifications,
	TabEmail,
	TabMemory,
}

var tabs = map[Tab]tabInfo{
	TabChat:          {label: "Chat", title: "AI Assistant"},
	TabCalendar:      {label: "Calendar", title: "Calendar"},
	TabFinance:       {label: "Finance", title: "Financial Overview"},
	TabNotifications: {label: "Notifications", title: "Notifications"},
	TabEmail:         {label: "Email", title: "Important Communications"},
	TabMemory:        {label: "Memory Bank", title: "Memory Bank"},
}

// Tabs returns every tab in sidebar order.
func Tabs() []Tab {
	out := make([]Tab, len(order))
	copy(out, order)
	return out
}

// ParseTab converts an identifier such as "finance" into a Tab.
// Matching ignores case and surrounding whitespace.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		if near, ok := Suggest(s); ok {
			return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTab, s, near)
		}
		return "", fmt.Errorf("%w %q", ErrUnknownTab, s)
	}
	return t, nil
}

// maxSuggestDistance is the largest edit distance Suggest accepts.
const maxSuggestDistance = 2

// Suggest returns the tab whose id is closest to s by edit distance, if any
// is within maxSuggestDistance. Ties go to the earlier tab in sidebar order.
func Suggest(s string) (Tab, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}

	best, bestDist := Tab(""), maxSuggestDistance+1
	for _, t := range order {
		if d := levenshtein.ComputeDistance(s, string(t)); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != ""
}

// Valid reports whether t is one of the six dashboard tabs.
func (t Tab) Valid() bool {
	_, ok := tabs[t]
	return ok
}

// Label returns the sidebar label for the tab.
func (t Tab) Label() string {
	return t.info().label
}

// Title returns the heading rendered above the tab's content.
func (t Tab) Title() string {
	return t.info().title
}

// Index returns the position of the tab in sidebar order.
func (t Tab) Index() int {
	for i, o := range order {
		if o == t {
			return i
		}
	}
	panic(fmt.Sprintf("dashboard: invalid tab %q", string(t)))
}

func (t Tab) String() string {
	return string(t)
}

func (t Tab) info() tabInfo {
	info, ok := tabs[t]
	if !ok {
		panic(fmt.Sprintf("dashboard: invalid tab %q", string(t)))
	}
	return info
}

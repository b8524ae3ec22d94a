package dashboard

// Router tracks the active tab and the menu flag. The zero value is not
// usable; create one with NewRouter.
type Router struct {
	active   Tab
	menuOpen bool
}

// NewRouter returns a router showing DefaultTab with the menu closed.
func NewRouter() Router {
	return Router{active: DefaultTab}
}

// NewRouterAt returns a router showing tab with the menu closed.
// It panics if tab is not a valid tab.
func NewRouterAt(tab Tab) Router {
	r := NewRouter()
	r.SelectTab(tab)
	return r
}

// Active returns the currently selected tab.
func (r Router) Active() Tab {
	return r.active
}

// MenuOpen reports whether the menu is open.
func (r Router) MenuOpen() bool {
	return r.menuOpen
}

// Title returns the title of the active tab.
func (r Router) Title() string {
	return r.active.Title()
}

// SelectTab makes tab the active tab and reports whether anything changed.
// Selecting an invalid tab is a programming error and panics; use ParseTab
// for identifiers that come from users.
func (r *Router) SelectTab(tab Tab) bool {
	_ = tab.info()
	if r.active == tab {
		return false
	}
	r.active = tab
	return true
}

// ToggleMenu flips the menu flag and returns the new value.
func (r *Router) ToggleMenu() bool {
	r.menuOpen = !r.menuOpen
	return r.menuOpen
}

// Next selects the tab after the active one, wrapping to the first.
func (r *Router) Next() Tab {
	r.active = order[(r.active.Index()+1)%len(order)]
	return r.active
}

// Prev selects the tab before the active one, wrapping to the last.
func (r *Router) Prev() Tab {
	r.active = order[(r.active.Index()-1+len(order))%len(order)]
	return r.active
}

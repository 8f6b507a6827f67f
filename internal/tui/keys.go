package tui

import "github.com/gdamore/tcell/v2"

// MenuHint describes a keyboard shortcut for display in the status bar.
type MenuHint struct {
	Key         string
	Description string
}

// Action represents a keybinding action.
type Action struct {
	Key     tcell.Key
	Rune    rune
	Hint    MenuHint
	Handler func()
	Visible bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Registry holds keybindings, global ones plus per-view overrides.
// Order of registration controls hint order.
type Registry struct {
	global []*Action
	views  map[View][]*Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[View][]*Action)}
}

// AddGlobal registers a binding active on every view.
func (r *Registry) AddGlobal(a *Action) {
	r.global = append(r.global, a)
}

// AddView registers a binding active only on the given view.
func (r *Registry) AddView(view View, a *Action) {
	r.views[view] = append(r.views[view], a)
}

// Hints returns the visible hints for a view, view-specific first.
func (r *Registry) Hints(view View) []MenuHint {
	var hints []MenuHint
	for _, a := range r.views[view] {
		if a.Visible {
			hints = append(hints, a.Hint)
		}
	}
	for _, a := range r.global {
		if a.Visible {
			hints = append(hints, a.Hint)
		}
	}
	return hints
}

// HandleEvent dispatches a key event, view bindings first. Returns true
// if a handler matched.
func (r *Registry) HandleEvent(view View, ev *tcell.EventKey) bool {
	for _, a := range r.views[view] {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	for _, a := range r.global {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	return false
}

package tui

// View identifies a top-level screen. The set is closed: anything else
// resolves to the feed.
type View string

const (
	ViewFeed     View = "feed"
	ViewChat     View = "chat"
	ViewProfile  View = "profile"
	ViewSettings View = "settings"
)

// Views returns all top-level views in display order.
func Views() []View {
	return []View{ViewFeed, ViewChat, ViewProfile, ViewSettings}
}

// ParseView maps arbitrary input onto the closed view set. Unknown
// names land on the feed.
func ParseView(s string) View {
	switch View(s) {
	case ViewFeed, ViewChat, ViewProfile, ViewSettings:
		return View(s)
	}
	return ViewFeed
}

// TitleKey returns the translation key for a view's title.
func (v View) TitleKey() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewProfile:
		return "profile"
	case ViewSettings:
		return "settings"
	}
	return "feed"
}

package views

import (
	"fmt"
	"strings"

	"github.com/inovira/inovira/internal/feed"
	"github.com/rivo/tview"
)

// ProfileView renders the signed-in user's profile and their posts.
type ProfileView struct {
	*tview.TextView
	tr func(string) string
}

// NewProfileView creates the profile screen.
func NewProfileView(tr func(string) string) *ProfileView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true)

	v := &ProfileView{TextView: tv, tr: tr}
	v.Refresh()
	return v
}

// Update redraws the profile header and post list.
func (v *ProfileView) Update(user feed.User, following, followers int, posts []feed.Post) {
	v.Clear()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[::b]%s[-:-:-]\n[gray]%s[-]\n\n", user.Name, user.Handle))
	b.WriteString(fmt.Sprintf("%d %s   %d %s\n\n", following, v.tr("following"), followers, v.tr("followers")))
	b.WriteString(fmt.Sprintf("[::b]%s[-:-:-]\n\n", v.tr("yourPosts")))

	if len(posts) == 0 {
		b.WriteString("[gray]" + v.tr("noPostsYet") + "[-]\n")
	}
	for _, p := range posts {
		b.WriteString(fmt.Sprintf("%s\n[gray]♥ %d · %s[-]\n\n", p.Body, p.Likes, relTime(p.CreatedAt)))
	}
	_, _ = fmt.Fprint(v, b.String())
	v.ScrollToBeginning()
}

// Refresh re-renders the localized chrome.
func (v *ProfileView) Refresh() {
	v.SetTitle(" " + v.tr("profile") + " ")
}

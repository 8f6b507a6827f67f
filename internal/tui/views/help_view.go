package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// HelpView lists keyboard shortcuts.
type HelpView struct {
	*tview.TextView
	tr func(string) string
}

// NewHelpView creates the help screen.
func NewHelpView(tr func(string) string) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)

	v := &HelpView{TextView: tv, tr: tr}
	v.Refresh()
	return v
}

// Update renders the shortcut table from key/description pairs.
func (v *HelpView) Update(hints [][2]string) {
	v.Clear()
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(fmt.Sprintf("  [aqua]%-10s[-] %s\n", h[0], h[1]))
	}
	_, _ = fmt.Fprint(v, b.String())
}

// Refresh re-renders the localized chrome.
func (v *HelpView) Refresh() {
	v.SetTitle(" " + v.tr("help") + " ")
}

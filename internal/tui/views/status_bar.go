package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// StatusBar displays the profile, the active view and transient notices.
type StatusBar struct {
	*tview.TextView
	profile string
	view    string
	note    string
	flash   string
	flashC  string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, flashC: "yellow"}
}

// SetProfile updates the profile name display.
func (sb *StatusBar) SetProfile(name string) {
	sb.profile = name
	sb.render()
}

// SetView updates the active view display.
func (sb *StatusBar) SetView(title string) {
	sb.view = title
	sb.render()
}

// SetNote sets a persistent indicator, e.g. a recording counter.
func (sb *StatusBar) SetNote(note string) {
	sb.note = note
	sb.render()
}

// SetFlash sets a temporary message with a tview color tag name.
func (sb *StatusBar) SetFlash(msg, color string) {
	sb.flash = msg
	if color != "" {
		sb.flashC = color
	}
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()

	clock := time.Now().Format("15:04")
	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s | %s", sb.profile, sb.view, clock)
	if sb.note != "" {
		line += fmt.Sprintf(" | [red]%s[-]", sb.note)
	}
	if sb.flash != "" {
		line += fmt.Sprintf(" | [%s]%s[-]", sb.flashC, sb.flash)
	}

	_, _ = fmt.Fprint(sb, line)
}

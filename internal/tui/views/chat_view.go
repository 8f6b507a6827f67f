package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/inovira/inovira/internal/chat"
	"github.com/rivo/tview"
)

// ChatView renders a one-to-one conversation with the input bar and the
// recording indicator.
type ChatView struct {
	*tview.Flex
	thread *tview.TextView
	input  *tview.InputField

	tr       func(string) string
	onSend   func(text string)
	onRecord func() // toggles the voice note recording
	onCall   func(video bool)
	onPlay   func() // plays the newest voice note

	contactName string
}

// NewChatView creates the conversation screen.
func NewChatView(tr func(string) string) *ChatView {
	thread := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	thread.SetBorder(true)

	input := tview.NewInputField().SetFieldWidth(0)
	input.SetBorder(true)

	v := &ChatView{
		Flex:   tview.NewFlex().SetDirection(tview.FlexRow),
		thread: thread,
		input:  input,
		tr:     tr,
	}

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter || v.onSend == nil {
			return
		}
		v.onSend(input.GetText())
		input.SetText("")
	})
	input.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyCtrlR:
			if v.onRecord != nil {
				v.onRecord()
			}
			return nil
		case tcell.KeyCtrlA:
			if v.onCall != nil {
				v.onCall(false)
			}
			return nil
		case tcell.KeyCtrlV:
			if v.onCall != nil {
				v.onCall(true)
			}
			return nil
		case tcell.KeyCtrlP:
			if v.onPlay != nil {
				v.onPlay()
			}
			return nil
		}
		return ev
	})

	v.AddItem(thread, 0, 1, false)
	v.AddItem(input, 3, 0, true)
	v.applyTitles()
	return v
}

// SetOnSend sets the text send callback.
func (v *ChatView) SetOnSend(fn func(text string)) { v.onSend = fn }

// SetOnRecord sets the record toggle callback.
func (v *ChatView) SetOnRecord(fn func()) { v.onRecord = fn }

// SetOnCall sets the call start callback.
func (v *ChatView) SetOnCall(fn func(video bool)) { v.onCall = fn }

// SetOnPlay sets the voice note playback callback.
func (v *ChatView) SetOnPlay(fn func()) { v.onPlay = fn }

// Input returns the input field for focus handling.
func (v *ChatView) Input() *tview.InputField { return v.input }

// SetContact updates the thread header.
func (v *ChatView) SetContact(name string) {
	v.contactName = name
	v.thread.SetTitle(" " + name + " ")
}

// SetRecording switches the input bar between typing and recording
// modes, showing the elapsed seconds while recording.
func (v *ChatView) SetRecording(on bool, seconds int) {
	if on {
		v.input.SetLabel(fmt.Sprintf(" [red]● %s %02d:%02d[-] ", v.tr("recording"), seconds/60, seconds%60))
		return
	}
	v.input.SetLabel("")
}

// Update redraws the message thread.
func (v *ChatView) Update(messages []chat.Message, playingID string, playingPct int) {
	v.thread.Clear()
	var b strings.Builder
	for _, m := range messages {
		who := v.contactName
		color := "blue"
		if m.FromMe {
			who = "You"
			color = "green"
		}
		b.WriteString(fmt.Sprintf("[%s::b]%s[-:-:-] [gray]%s[-]\n", color, who, m.SentAt.Format("15:04")))
		switch m.Kind {
		case chat.KindAudio:
			secs := int(m.Duration.Seconds())
			line := fmt.Sprintf("▶ %02d:%02d", secs/60, secs%60)
			if m.ID == playingID {
				line = fmt.Sprintf("%s %s", progressBar(playingPct), line)
			}
			b.WriteString(line + "\n\n")
		default:
			b.WriteString(m.Body + "\n\n")
		}
	}
	_, _ = fmt.Fprint(v.thread, b.String())
	v.thread.ScrollToEnd()
}

// Refresh re-renders the localized chrome.
func (v *ChatView) Refresh() {
	v.applyTitles()
}

func (v *ChatView) applyTitles() {
	v.input.SetTitle(" " + v.tr("typeAMessage") + " ")
}

func progressBar(pct int) string {
	const width = 10
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

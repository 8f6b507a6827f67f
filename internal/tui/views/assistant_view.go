package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/inovira/inovira/internal/assistant"
	"github.com/rivo/tview"
)

// AssistantView renders the AI conversation.
type AssistantView struct {
	*tview.Flex
	thread *tview.TextView
	input  *tview.InputField

	tr     func(string) string
	onSend func(text string)
}

// NewAssistantView creates the assistant screen.
func NewAssistantView(tr func(string) string) *AssistantView {
	thread := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	thread.SetBorder(true)

	input := tview.NewInputField().SetFieldWidth(0)
	input.SetBorder(true)

	v := &AssistantView{
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

	v.AddItem(thread, 0, 1, false)
	v.AddItem(input, 3, 0, true)
	v.applyTitles()
	return v
}

// SetOnSend sets the send callback.
func (v *AssistantView) SetOnSend(fn func(text string)) { v.onSend = fn }

// Input returns the input field for focus handling.
func (v *AssistantView) Input() *tview.InputField { return v.input }

// SetBusy reflects the request state on the input bar.
func (v *AssistantView) SetBusy(state assistant.State) {
	switch state {
	case assistant.Sending, assistant.Streaming:
		v.input.SetLabel(" " + v.tr("generating") + " ")
	default:
		v.input.SetLabel("")
	}
}

// Update redraws the conversation.
func (v *AssistantView) Update(messages []assistant.Message) {
	v.thread.Clear()
	var b strings.Builder
	for _, m := range messages {
		who := v.tr("aiAssistant")
		color := "fuchsia"
		if m.Role == assistant.RoleUser {
			who = "You"
			color = "green"
		}
		b.WriteString(fmt.Sprintf("[%s::b]%s[-:-:-] [gray]%s[-]\n", color, who, m.SentAt.Format("15:04")))
		body := m.Body
		if m.Pending && body == "" {
			body = "…"
		} else if m.Pending {
			body += "▌"
		}
		if m.Failed {
			body = "[red]" + body + "[-]"
		}
		b.WriteString(body + "\n\n")
	}
	_, _ = fmt.Fprint(v.thread, b.String())
	v.thread.ScrollToEnd()
}

// Refresh re-renders the localized chrome.
func (v *AssistantView) Refresh() {
	v.applyTitles()
}

func (v *AssistantView) applyTitles() {
	v.thread.SetTitle(" " + v.tr("aiAssistant") + " ")
	v.input.SetTitle(" " + v.tr("typeAMessage") + " ")
}

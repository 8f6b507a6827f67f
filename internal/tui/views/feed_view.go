package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/inovira/inovira/internal/feed"
	"github.com/inovira/inovira/internal/prefs"
	"github.com/rivo/tview"
)

// FeedView renders the story rail, the composer and the timeline.
type FeedView struct {
	*tview.Flex
	stories  *tview.TextView
	timeline *tview.TextView
	input    *tview.InputField

	tr        func(string) string
	onPost    func(draft string)
	onEnhance func(draft string)
}

// NewFeedView creates the feed screen.
func NewFeedView(tr func(string) string) *FeedView {
	stories := tview.NewTextView().SetDynamicColors(true)
	stories.SetBorder(true)

	timeline := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	timeline.SetBorder(true)

	input := tview.NewInputField().SetFieldWidth(0)
	input.SetBorder(true)

	v := &FeedView{
		Flex:     tview.NewFlex().SetDirection(tview.FlexRow),
		stories:  stories,
		timeline: timeline,
		input:    input,
		tr:       tr,
	}

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		if v.onPost != nil {
			v.onPost(input.GetText())
		}
	})
	// Ctrl-E asks the model to polish the draft.
	input.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyCtrlE {
			if v.onEnhance != nil {
				v.onEnhance(input.GetText())
			}
			return nil
		}
		return ev
	})

	v.AddItem(stories, 3, 0, false)
	v.AddItem(input, 3, 0, false)
	v.AddItem(timeline, 0, 1, true)
	v.applyTitles()
	return v
}

// SetOnPost sets the publish callback.
func (v *FeedView) SetOnPost(fn func(draft string)) { v.onPost = fn }

// SetOnEnhance sets the AI-enhance callback.
func (v *FeedView) SetOnEnhance(fn func(draft string)) { v.onEnhance = fn }

// Input returns the composer input field for focus handling.
func (v *FeedView) Input() *tview.InputField { return v.input }

// SetDraft replaces the composer text, e.g. after enhancement.
func (v *FeedView) SetDraft(text string) { v.input.SetText(text) }

// ClearDraft empties the composer.
func (v *FeedView) ClearDraft() { v.input.SetText("") }

// SetEnhancing toggles the busy label on the composer.
func (v *FeedView) SetEnhancing(busy bool) {
	if busy {
		v.input.SetLabel(" " + v.tr("generating") + " ")
		return
	}
	v.input.SetLabel("")
}

// Update redraws stories and posts. Layout compact drops the blank line
// between posts.
func (v *FeedView) Update(stories []feed.Story, posts []feed.Post, layout prefs.Layout) {
	v.stories.Clear()
	var rail []string
	for _, s := range stories {
		rail = append(rail, fmt.Sprintf("[::b]%s[-:-:-]", s.Author.Name))
	}
	_, _ = fmt.Fprint(v.stories, " "+strings.Join(rail, "  |  "))

	v.timeline.Clear()
	sep := "\n\n"
	if layout == prefs.LayoutCompact {
		sep = "\n"
	}
	var b strings.Builder
	for i, p := range posts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(fmt.Sprintf("[::b]%s[-:-:-] [gray]%s · %s[-]\n", p.Author.Name, p.Author.Handle, relTime(p.CreatedAt)))
		b.WriteString(p.Body)
		if layout != prefs.LayoutCompact {
			b.WriteString(fmt.Sprintf("\n[gray]♥ %d   💬 %d[-]", p.Likes, p.Comments))
		}
	}
	_, _ = fmt.Fprint(v.timeline, b.String())
	v.timeline.ScrollToBeginning()
}

// Refresh re-renders the localized chrome after a language change.
func (v *FeedView) Refresh() {
	v.applyTitles()
}

func (v *FeedView) applyTitles() {
	v.stories.SetTitle(" " + v.tr("stories") + " ")
	v.timeline.SetTitle(" " + v.tr("feed") + " ")
	v.input.SetTitle(" " + v.tr("whatsOnYourMind") + " ")
}

func relTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

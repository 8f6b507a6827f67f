// Package tui is the terminal user interface: the view router, theming
// and the event loop bridging domain events onto the screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/inovira/inovira/internal/assistant"
	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/call"
	"github.com/inovira/inovira/internal/chat"
	"github.com/inovira/inovira/internal/contacts"
	"github.com/inovira/inovira/internal/feed"
	"github.com/inovira/inovira/internal/media"
	"github.com/inovira/inovira/internal/prefs"
	"github.com/inovira/inovira/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageCall = "call"
	pageHelp = "help"
)

// Deps bundles what the TUI needs from the rest of the app.
type Deps struct {
	Profile   string
	Prefs     *prefs.Store
	Bus       *bus.Bus
	Log       *zap.Logger
	Timeline  *feed.Timeline
	Composer  *feed.Composer
	Contacts  *contacts.Directory
	Chats     *chat.Manager
	Assistant *assistant.Session
	Calls     *call.Manager
	Self      feed.User
}

// App is the main TUI application shell.
type App struct {
	Deps

	app      *tview.Application
	pages    *tview.Pages
	registry *Registry
	flash    *Flash

	statusBar *views.StatusBar
	feedV     *views.FeedView
	chatList  *views.ChatList
	chatV     *views.ChatView
	assistV   *views.AssistantView
	callV     *views.CallView
	profileV  *views.ProfileView
	settingsV *views.SettingsView
	helpV     *views.HelpView

	current       View
	activeContact string
	inPeerChat    bool
	playbackPct   int
	playbackID    string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(d Deps) *App {
	ctx, cancel := context.WithCancel(context.Background())
	tr := d.Prefs.Translate

	a := &App{
		Deps:      d,
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		registry:  NewRegistry(),
		flash:     &Flash{},
		statusBar: views.NewStatusBar(),
		feedV:     views.NewFeedView(tr),
		chatList:  views.NewChatList(tr),
		chatV:     views.NewChatView(tr),
		assistV:   views.NewAssistantView(tr),
		callV:     views.NewCallView(tr),
		profileV:  views.NewProfileView(tr),
		settingsV: views.NewSettingsView(tr, d.Prefs),
		current:   ViewFeed,
		ctx:       ctx,
		cancel:    cancel,
	}
	a.helpV = views.NewHelpView(tr)

	a.statusBar.SetProfile(d.Profile)
	a.applyTheme()
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.renderAll()
	return a
}

func (a *App) tr(key string) string { return a.Prefs.Translate(key) }

func (a *App) applyTheme() {
	th := ThemeFor(a.Prefs.Theme())
	tview.Styles.PrimitiveBackgroundColor = th.BgColor
	tview.Styles.PrimaryTextColor = th.FgColor
	tview.Styles.BorderColor = th.BorderColor
	tview.Styles.TitleColor = th.TitleColor
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(&Action{
		Rune: '1', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "1", Description: "feed"},
		Handler: func() { a.switchTo(ViewFeed) },
	})
	a.registry.AddGlobal(&Action{
		Rune: '2', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "2", Description: "chat"},
		Handler: func() { a.switchTo(ViewChat) },
	})
	a.registry.AddGlobal(&Action{
		Rune: '3', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "3", Description: "profile"},
		Handler: func() { a.switchTo(ViewProfile) },
	})
	a.registry.AddGlobal(&Action{
		Rune: '4', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "4", Description: "settings"},
		Handler: func() { a.switchTo(ViewSettings) },
	})
	a.registry.AddGlobal(&Action{
		Rune: '?', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "?", Description: "help"},
		Handler: func() { a.showHelp() },
	})
	a.registry.AddGlobal(&Action{
		Rune: 'q', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "q", Description: "quit"},
		Handler: func() { a.Stop() },
	})
	a.registry.AddView(ViewChat, &Action{
		Rune: 'i', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "i", Description: "type"},
		Handler: func() { a.focusChatInput() },
	})
	a.registry.AddView(ViewFeed, &Action{
		Rune: 'i', Key: tcell.KeyRune, Visible: true,
		Hint:    MenuHint{Key: "i", Description: "compose"},
		Handler: func() { a.app.SetFocus(a.feedV.Input()) },
	})
}

func (a *App) setupCallbacks() {
	a.feedV.SetOnPost(func(draft string) {
		a.Composer.SetDraft(draft)
		if _, err := a.Composer.Publish(); err != nil {
			// Blank drafts are dropped without a notice.
			return
		}
		a.feedV.ClearDraft()
		a.renderFeed()
	})
	a.feedV.SetOnEnhance(func(draft string) {
		a.Composer.SetDraft(draft)
		go func() {
			err := a.Composer.Enhance(a.ctx)
			a.app.QueueUpdateDraw(func() {
				a.feedV.SetEnhancing(false)
				if err != nil {
					if errors.Is(err, feed.ErrBusy) || errors.Is(err, feed.ErrEmptyDraft) {
						return
					}
					a.flashError(a.tr("aiUnavailable"))
					return
				}
				a.feedV.SetDraft(a.Composer.Draft())
			})
		}()
		a.feedV.SetEnhancing(true)
	})

	a.chatList.SetOnSelect(func(id string) { a.openChat(id) })

	a.chatV.SetOnSend(func(text string) {
		s := a.Chats.Session(a.activeContact)
		if m, ok := s.SendText(text); ok {
			a.Contacts.SetLastMessage(a.activeContact, m.Body)
		}
		a.renderChat()
	})
	a.chatV.SetOnRecord(func() { a.toggleRecording() })
	a.chatV.SetOnPlay(func() { a.playLatestVoiceNote() })
	a.chatV.SetOnCall(func(video bool) {
		mode := call.ModeAudio
		if video {
			mode = call.ModeVideo
		}
		a.startCall(a.activeContact, mode)
	})

	a.assistV.SetOnSend(func(text string) {
		go func() {
			err := a.Assistant.Send(a.ctx, text)
			a.app.QueueUpdateDraw(func() {
				if errors.Is(err, assistant.ErrBusy) {
					a.flashWarn(a.tr("generating"))
				}
				a.renderAssistant()
			})
		}()
		a.renderAssistant()
	})

	a.callV.SetOnMute(func() {
		_ = a.Calls.ToggleMute()
		a.renderCall()
	})
	a.callV.SetOnCamera(func() {
		_ = a.Calls.ToggleCamera()
		a.renderCall()
	})
	a.callV.SetOnEnd(func() { a.endCall() })

	a.settingsV.SetOnError(func(err error) {
		a.flashError(err.Error())
	})
}

func (a *App) setupLayout() {
	chatFlex := tview.NewFlex().
		AddItem(a.chatList, 0, 1, true).
		AddItem(a.chatV, 0, 2, false)

	a.pages.AddPage(string(ViewFeed), a.feedV, true, true)
	a.pages.AddPage(string(ViewChat), chatFlex, true, false)
	a.pages.AddPage(string(ViewProfile), a.profileV, true, false)
	a.pages.AddPage(string(ViewSettings), a.settingsV, true, false)
	a.pages.AddPage(pageHelp, a.helpV, true, false)
	a.pages.AddPage(pageCall, a.callV, true, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(root, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		front, _ := a.pages.GetFrontPage()

		// The call overlay owns its keys until the call ends.
		if front == pageCall {
			return event
		}

		if event.Key() == tcell.KeyEscape {
			switch front {
			case pageHelp:
				a.switchTo(a.current)
				return nil
			case string(ViewChat):
				if a.inPeerChat {
					a.closePeerChat()
					return nil
				}
			}
			a.switchTo(ViewFeed)
			return nil
		}

		// Let text input widgets handle all keys normally.
		focused := a.app.GetFocus()
		if _, ok := focused.(*tview.InputField); ok {
			return event
		}
		if _, ok := focused.(*tview.DropDown); ok {
			return event
		}

		if a.registry.HandleEvent(a.current, event) {
			return nil
		}
		return event
	})
}

// switchTo routes to a top-level view. Unknown pages land on the feed,
// so the router can never show a blank screen.
func (a *App) switchTo(v View) {
	a.current = ParseView(string(v))
	a.pages.SwitchToPage(string(a.current))
	a.statusBar.SetView(a.tr(a.current.TitleKey()))
	switch a.current {
	case ViewChat:
		if a.inPeerChat {
			a.focusChatInput()
		} else {
			a.app.SetFocus(a.chatList)
		}
	case ViewSettings:
		a.app.SetFocus(a.settingsV.Form())
	default:
		a.app.SetFocus(a.pages)
	}
}

func (a *App) showHelp() {
	hints := a.registry.Hints(a.current)
	rows := make([][2]string, 0, len(hints)+4)
	for _, h := range hints {
		rows = append(rows, [2]string{h.Key, h.Description})
	}
	rows = append(rows,
		[2]string{"ctrl-e", a.tr("enhance")},
		[2]string{"ctrl-r", a.tr("holdToRecord")},
		[2]string{"ctrl-a", a.tr("audioCall")},
		[2]string{"ctrl-v", a.tr("videoCall")},
	)
	a.helpV.Update(rows)
	a.pages.SwitchToPage(pageHelp)
}

func (a *App) openChat(id string) {
	c, ok := a.Contacts.Get(id)
	if !ok {
		return
	}
	a.activeContact = id
	a.inPeerChat = true

	if c.IsAssistant {
		a.swapChatPane(a.assistV)
		a.renderAssistant()
		a.app.SetFocus(a.assistV.Input())
		return
	}
	a.chatV.SetContact(c.Name)
	a.swapChatPane(a.chatV)
	a.renderChat()
	a.app.SetFocus(a.chatV.Input())
}

// swapChatPane rebuilds the chat page with the given right-hand pane.
func (a *App) swapChatPane(pane tview.Primitive) {
	chatFlex := tview.NewFlex().
		AddItem(a.chatList, 0, 1, false).
		AddItem(pane, 0, 2, true)
	a.pages.AddPage(string(ViewChat), chatFlex, true, a.current == ViewChat)
}

func (a *App) closePeerChat() {
	if s := a.Chats.Session(a.activeContact); s != nil {
		s.Close()
	}
	a.inPeerChat = false
	a.chatV.SetRecording(false, 0)
	a.app.SetFocus(a.chatList)
}

func (a *App) focusChatInput() {
	if c, ok := a.Contacts.Get(a.activeContact); ok && c.IsAssistant {
		a.app.SetFocus(a.assistV.Input())
		return
	}
	a.app.SetFocus(a.chatV.Input())
}

func (a *App) toggleRecording() {
	s := a.Chats.Session(a.activeContact)
	if rec, _ := s.Recording(); rec {
		if m, ok := s.StopRecording(); ok {
			a.Contacts.SetLastMessage(a.activeContact, fmt.Sprintf("🎤 %ds", int(m.Duration.Seconds())))
		}
		a.chatV.SetRecording(false, 0)
		a.statusBar.SetNote("")
		a.renderChat()
		return
	}

	if err := s.StartRecording(); err != nil {
		switch {
		case errors.Is(err, media.ErrPermissionDenied):
			a.flashError(a.tr("micDenied"))
		case errors.Is(err, media.ErrDeviceUnavailable), errors.Is(err, media.ErrDeviceBusy):
			a.flashError(a.tr("deviceDenied"))
		}
		return
	}
	a.chatV.SetRecording(true, 0)
}

func (a *App) playLatestVoiceNote() {
	s := a.Chats.Session(a.activeContact)
	msgs := s.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Kind == chat.KindAudio {
			if s.Play(msgs[i].ID) {
				a.playbackID = msgs[i].ID
				a.playbackPct = 0
			}
			return
		}
	}
}

func (a *App) startCall(contactID string, mode call.Mode) {
	c, ok := a.Contacts.Get(contactID)
	if !ok || c.IsAssistant {
		return
	}
	_, err := a.Calls.Initiate(contactID, mode)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrPermissionDenied):
			a.flashError(a.tr("micDenied"))
		case errors.Is(err, media.ErrDeviceUnavailable), errors.Is(err, media.ErrDeviceBusy):
			a.flashError(a.tr("deviceDenied"))
		case errors.Is(err, call.ErrCallInProgress):
			a.flashWarn(a.tr("calling"))
		}
		return
	}
	a.renderCall()
	a.pages.ShowPage(pageCall)
	a.app.SetFocus(a.callV)
}

func (a *App) endCall() {
	a.Calls.End()
	a.pages.HidePage(pageCall)
	a.switchTo(a.current)
}

func (a *App) flashError(msg string) {
	a.flash.Set(FlashErr, msg, 5*time.Second)
	a.statusBar.SetFlash(msg, "red")
}

func (a *App) flashWarn(msg string) {
	a.flash.Set(FlashWarn, msg, 3*time.Second)
	a.statusBar.SetFlash(msg, "orange")
}

func (a *App) renderAll() {
	a.renderFeed()
	a.chatList.Update(a.Contacts.List())
	a.renderChat()
	a.renderAssistant()
	a.renderProfile()
	a.statusBar.SetView(a.tr(a.current.TitleKey()))
}

func (a *App) renderFeed() {
	a.feedV.Update(a.Timeline.Stories(), a.Timeline.Posts(), a.Prefs.Layout())
}

func (a *App) renderChat() {
	if a.activeContact == "" {
		return
	}
	s := a.Chats.Session(a.activeContact)
	a.chatV.Update(s.Messages(), a.playbackID, a.playbackPct)
}

func (a *App) renderAssistant() {
	a.assistV.SetBusy(a.Assistant.State())
	a.assistV.Update(a.Assistant.Messages())
}

func (a *App) renderProfile() {
	a.profileV.Update(a.Self, 245, 1870, a.Timeline.PostsBy(a.Self.Handle))
}

func (a *App) renderCall() {
	s := a.Calls.Active()
	if s == nil {
		return
	}
	name := s.ContactID
	if c, ok := a.Contacts.Get(s.ContactID); ok {
		name = c.Name
	}
	a.callV.Update(s, name)
}

// refreshLanguage re-renders every localized surface after a language
// change.
func (a *App) refreshLanguage() {
	a.Assistant.RefreshWelcome()
	a.feedV.Refresh()
	a.chatList.Refresh()
	a.chatV.Refresh()
	a.assistV.Refresh()
	a.profileV.Refresh()
	a.helpV.Refresh()
	a.settingsV.Refresh()
	a.renderAll()
}

// drainEvents pumps domain events into screen updates.
func (a *App) drainEvents() {
	ch, unsub := a.Bus.Subscribe("", 256)
	defer unsub()

	for {
		select {
		case <-a.ctx.Done():
			return
		case evt := <-ch:
			a.handleEvent(evt)
		}
	}
}

func (a *App) handleEvent(evt bus.Event) {
	switch evt.Kind {
	case bus.KindPrefsChanged:
		changed, _ := evt.Payload.(prefs.Changed)
		a.app.QueueUpdateDraw(func() {
			switch changed.Key {
			case "theme":
				a.applyTheme()
				a.renderAll()
			case "language":
				a.refreshLanguage()
			case "post_layout":
				a.renderFeed()
			}
		})
	case bus.KindChatRecordingTick:
		secs, _ := evt.Payload.(int)
		a.app.QueueUpdateDraw(func() {
			a.chatV.SetRecording(true, secs)
			a.statusBar.SetNote(fmt.Sprintf("● %s %02d:%02d", a.tr("recording"), secs/60, secs%60))
		})
	case bus.KindChatPlaybackTick:
		a.app.QueueUpdateDraw(func() {
			if t, ok := evt.Payload.(chat.PlaybackTick); ok {
				a.playbackID = t.MessageID
				a.playbackPct = t.Percent
				if t.Percent >= 100 {
					a.playbackID = ""
					a.playbackPct = 0
				}
			}
			a.renderChat()
		})
	case bus.KindChatMessage:
		a.app.QueueUpdateDraw(func() {
			a.renderChat()
			a.chatList.Update(a.Contacts.List())
		})
	case bus.KindAssistantChunk, bus.KindAssistantState:
		a.app.QueueUpdateDraw(func() { a.renderAssistant() })
	case bus.KindCallState:
		a.app.QueueUpdateDraw(func() { a.renderCall() })
	case bus.KindFeedPosted, bus.KindFeedEnhancing:
		a.app.QueueUpdateDraw(func() {
			a.renderFeed()
			a.renderProfile()
		})
	}
}

// Run starts the TUI event loop and blocks until Stop.
func (a *App) Run() error {
	go a.drainEvents()
	go a.startClock()
	a.switchTo(ViewFeed)
	return a.app.Run()
}

// startClock redraws the status bar once a minute so the clock stays
// current.
func (a *App) startClock() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.app.QueueUpdateDraw(func() {
				a.statusBar.SetView(a.tr(a.current.TitleKey()))
			})
		}
	}
}

// Stop gracefully shuts down the TUI, releasing any held devices.
func (a *App) Stop() {
	a.Calls.End()
	a.Chats.Close()
	a.cancel()
	a.app.Stop()
}

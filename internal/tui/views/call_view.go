package views

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/inovira/inovira/internal/call"
	"github.com/rivo/tview"
)

// CallView is the full-screen overlay shown during a call.
type CallView struct {
	*tview.Flex
	header   *tview.TextView
	controls *tview.TextView

	tr       func(string) string
	onMute   func()
	onCamera func()
	onEnd    func()

	contactName string
}

// NewCallView creates the call overlay.
func NewCallView(tr func(string) string) *CallView {
	header := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	controls := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	v := &CallView{
		Flex:     tview.NewFlex().SetDirection(tview.FlexRow),
		header:   header,
		controls: controls,
		tr:       tr,
	}
	v.SetBorder(true)

	v.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() != tcell.KeyRune {
			return ev
		}
		switch ev.Rune() {
		case 'm':
			if v.onMute != nil {
				v.onMute()
			}
			return nil
		case 'c':
			if v.onCamera != nil {
				v.onCamera()
			}
			return nil
		case 'e':
			if v.onEnd != nil {
				v.onEnd()
			}
			return nil
		}
		return ev
	})

	v.AddItem(tview.NewBox(), 0, 1, false)
	v.AddItem(header, 3, 0, false)
	v.AddItem(controls, 3, 0, false)
	v.AddItem(tview.NewBox(), 0, 1, false)
	return v
}

// SetOnMute sets the mute toggle callback.
func (v *CallView) SetOnMute(fn func()) { v.onMute = fn }

// SetOnCamera sets the camera toggle callback.
func (v *CallView) SetOnCamera(fn func()) { v.onCamera = fn }

// SetOnEnd sets the end call callback.
func (v *CallView) SetOnEnd(fn func()) { v.onEnd = fn }

// Update redraws the overlay for the current call state.
func (v *CallView) Update(s *call.Session, contactName string) {
	if s == nil {
		return
	}
	v.contactName = contactName

	elapsed := time.Since(s.StartedAt).Round(time.Second)
	mode := v.tr("audioCall")
	if s.Mode == call.ModeVideo {
		mode = v.tr("videoCall")
	}
	v.header.Clear()
	_, _ = fmt.Fprintf(v.header, "[::b]%s[-:-:-]\n%s · %s", contactName, mode, elapsed)

	mute := v.tr("mute")
	if s.Muted() {
		mute = v.tr("unmute")
	}
	camera := ""
	if s.Mode == call.ModeVideo {
		camera = v.tr("cameraOff")
		if !s.CameraOn() {
			camera = v.tr("cameraOn")
		}
		camera = fmt.Sprintf("   [aqua]c[-] %s", camera)
	}
	v.controls.Clear()
	_, _ = fmt.Fprintf(v.controls, "[aqua]m[-] %s%s   [red]e[-] %s", mute, camera, v.tr("endCall"))
}

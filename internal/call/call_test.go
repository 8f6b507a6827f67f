package call

import (
	"errors"
	"testing"

	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/media"
)

func testManager(t *testing.T) (*Manager, *media.LocalDevice) {
	t.Helper()
	d := media.NewLocalDevice()
	return NewManager(d, bus.New(), nil), d
}

func TestVideoCallAcquiresBothTracks(t *testing.T) {
	m, _ := testManager(t)

	s, err := m.Initiate("elena", ModeVideo)
	if err != nil {
		t.Fatalf("Initiate() error = %v", err)
	}
	defer m.End()

	if s.LiveTracks() != 2 {
		t.Errorf("LiveTracks() = %d, want 2", s.LiveTracks())
	}
	if s.Muted() {
		t.Error("new call starts muted")
	}
	if !s.CameraOn() {
		t.Error("video call starts with camera off")
	}
}

func TestAudioCallHasNoCamera(t *testing.T) {
	m, _ := testManager(t)

	s, err := m.Initiate("liam", ModeAudio)
	if err != nil {
		t.Fatal(err)
	}
	defer m.End()

	if s.LiveTracks() != 1 {
		t.Errorf("LiveTracks() = %d, want 1", s.LiveTracks())
	}
	if s.CameraOn() {
		t.Error("audio call reports camera on")
	}
	if err := m.ToggleCamera(); !errors.Is(err, ErrNoCall) {
		t.Errorf("ToggleCamera() on audio call error = %v, want ErrNoCall", err)
	}
}

func TestSecondCallRejected(t *testing.T) {
	m, _ := testManager(t)

	if _, err := m.Initiate("elena", ModeAudio); err != nil {
		t.Fatal(err)
	}
	defer m.End()

	if _, err := m.Initiate("liam", ModeAudio); !errors.Is(err, ErrCallInProgress) {
		t.Errorf("second Initiate() error = %v, want ErrCallInProgress", err)
	}
}

func TestToggleMuteKeepsDevice(t *testing.T) {
	m, d := testManager(t)

	s, err := m.Initiate("elena", ModeAudio)
	if err != nil {
		t.Fatal(err)
	}
	defer m.End()

	if err := m.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if !s.Muted() {
		t.Error("call not muted after toggle")
	}
	// Muting pauses the track; it does not release the device.
	if s.LiveTracks() != 1 {
		t.Errorf("LiveTracks() = %d, want 1 while muted", s.LiveTracks())
	}
	if _, err := d.Acquire(media.Constraints{Audio: true}); !errors.Is(err, media.ErrDeviceBusy) {
		t.Errorf("device released by mute: %v", err)
	}

	if err := m.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if s.Muted() {
		t.Error("call still muted after second toggle")
	}
}

func TestToggleCamera(t *testing.T) {
	m, _ := testManager(t)

	s, err := m.Initiate("elena", ModeVideo)
	if err != nil {
		t.Fatal(err)
	}
	defer m.End()

	if err := m.ToggleCamera(); err != nil {
		t.Fatal(err)
	}
	if s.CameraOn() {
		t.Error("camera still on after toggle")
	}
	if err := m.ToggleCamera(); err != nil {
		t.Fatal(err)
	}
	if !s.CameraOn() {
		t.Error("camera off after second toggle")
	}
}

func TestEndStopsAllTracks(t *testing.T) {
	m, d := testManager(t)

	s, err := m.Initiate("elena", ModeVideo)
	if err != nil {
		t.Fatal(err)
	}
	// End while muted with camera off: teardown must not depend on
	// toggle state.
	if err := m.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if err := m.ToggleCamera(); err != nil {
		t.Fatal(err)
	}

	m.End()

	if got := s.LiveTracks(); got != 0 {
		t.Errorf("LiveTracks() after End = %d, want 0", got)
	}
	if m.Active() != nil {
		t.Error("Active() non-nil after End")
	}

	stream, err := d.Acquire(media.Constraints{Audio: true, Video: true})
	if err != nil {
		t.Fatalf("device still held after End: %v", err)
	}
	stream.Close()
}

func TestEndWithoutCallIsNoop(t *testing.T) {
	m, _ := testManager(t)
	m.End()
	m.End()
}

func TestTogglesWithoutCall(t *testing.T) {
	m, _ := testManager(t)

	if err := m.ToggleMute(); !errors.Is(err, ErrNoCall) {
		t.Errorf("ToggleMute() error = %v, want ErrNoCall", err)
	}
	if err := m.ToggleCamera(); !errors.Is(err, ErrNoCall) {
		t.Errorf("ToggleCamera() error = %v, want ErrNoCall", err)
	}
}

func TestInitiateDeniedLeavesNoState(t *testing.T) {
	m, d := testManager(t)
	d.SetDenied(media.ErrPermissionDenied)

	_, err := m.Initiate("elena", ModeVideo)
	if !errors.Is(err, media.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied", err)
	}
	if m.Active() != nil {
		t.Error("failed Initiate() left an active call")
	}

	d.SetDenied(nil)
	if _, err := m.Initiate("elena", ModeVideo); err != nil {
		t.Fatalf("Initiate() after grant error = %v", err)
	}
	m.End()
}

func TestEndPublishesEvent(t *testing.T) {
	d := media.NewLocalDevice()
	b := bus.New()
	m := NewManager(d, b, nil)

	ch, unsub := b.Subscribe("call.", 10)
	defer unsub()

	if _, err := m.Initiate("elena", ModeAudio); err != nil {
		t.Fatal(err)
	}
	m.End()

	kinds := map[string]bool{}
	for len(ch) > 0 {
		evt := <-ch
		change, ok := evt.Payload.(Change)
		if !ok {
			t.Fatalf("payload type = %T, want Change", evt.Payload)
		}
		kinds[change.Kind] = true
	}
	if !kinds["started"] || !kinds["ended"] {
		t.Errorf("events = %v, want started and ended", kinds)
	}
}

// Package call manages audio and video calls. One call may exist at a
// time; ending it always releases the capture device, whatever state
// the call was in.
package call

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/media"
	"go.uber.org/zap"
)

// ErrCallInProgress is returned when a call is already active.
var ErrCallInProgress = errors.New("call: another call is in progress")

// ErrNoCall is returned by toggles when no call is active.
var ErrNoCall = errors.New("call: no active call")

// Mode selects audio-only or video calling.
type Mode string

const (
	ModeAudio Mode = "audio"
	ModeVideo Mode = "video"
)

// Session is a single active call.
type Session struct {
	ID        string
	ContactID string
	Mode      Mode
	StartedAt time.Time

	stream *media.Stream
}

// Muted reports whether the microphone track is disabled.
func (s *Session) Muted() bool {
	t := s.stream.Track(media.TrackAudio)
	return t == nil || !t.Enabled()
}

// CameraOn reports whether the camera track is producing video.
func (s *Session) CameraOn() bool {
	t := s.stream.Track(media.TrackVideo)
	return t != nil && t.Enabled()
}

// LiveTracks counts tracks not yet stopped.
func (s *Session) LiveTracks() int {
	return s.stream.LiveTracks()
}

// Change is the payload for call state events.
type Change struct {
	Kind    string // started, muted, camera, ended
	Session *Session
}

// Manager owns the single active call.
type Manager struct {
	device media.Device
	bus    *bus.Bus
	log    *zap.Logger

	mu     sync.Mutex
	active *Session
}

// NewManager creates a call manager.
func NewManager(device media.Device, b *bus.Bus, log *zap.Logger) *Manager {
	return &Manager{device: device, bus: b, log: log}
}

// Active returns the current call, or nil.
func (m *Manager) Active() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Initiate starts a call with a contact. Video calls request both
// tracks; audio calls request the microphone only. Device errors pass
// through so the UI can show the matching notice, and no call state is
// left behind on failure.
func (m *Manager) Initiate(contactID string, mode Mode) (*Session, error) {
	m.mu.Lock()
	if m.active != nil {
		m.mu.Unlock()
		return nil, ErrCallInProgress
	}
	m.mu.Unlock()

	stream, err := m.device.Acquire(media.Constraints{
		Audio: true,
		Video: mode == ModeVideo,
	})
	if err != nil {
		if m.log != nil {
			m.log.Warn("call device acquire failed",
				zap.String("contact", contactID),
				zap.String("mode", string(mode)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	s := &Session{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Mode:      mode,
		StartedAt: time.Now(),
		stream:    stream,
	}

	m.mu.Lock()
	if m.active != nil {
		m.mu.Unlock()
		stream.Close()
		return nil, ErrCallInProgress
	}
	m.active = s
	m.mu.Unlock()

	m.publish("started", s)
	return s, nil
}

// ToggleMute flips the microphone without releasing the device.
func (m *Manager) ToggleMute() error {
	m.mu.Lock()
	s := m.active
	m.mu.Unlock()
	if s == nil {
		return ErrNoCall
	}
	t := s.stream.Track(media.TrackAudio)
	if t == nil {
		return ErrNoCall
	}
	t.SetEnabled(!t.Enabled())
	m.publish("muted", s)
	return nil
}

// ToggleCamera flips the camera without releasing the device.
func (m *Manager) ToggleCamera() error {
	m.mu.Lock()
	s := m.active
	m.mu.Unlock()
	if s == nil {
		return ErrNoCall
	}
	t := s.stream.Track(media.TrackVideo)
	if t == nil {
		return ErrNoCall
	}
	t.SetEnabled(!t.Enabled())
	m.publish("camera", s)
	return nil
}

// End terminates the active call. Every track is stopped and the device
// released regardless of mute or camera state. Ending with no active
// call is a no-op.
func (m *Manager) End() {
	m.mu.Lock()
	s := m.active
	m.active = nil
	m.mu.Unlock()
	if s == nil {
		return
	}

	s.stream.Close()
	if m.log != nil {
		m.log.Info("call ended",
			zap.String("contact", s.ContactID),
			zap.Duration("duration", time.Since(s.StartedAt)),
		)
	}
	m.publish("ended", s)
}

func (m *Manager) publish(kind string, s *Session) {
	if m.bus != nil {
		m.bus.Publish(bus.Now(bus.KindCallState, Change{Kind: kind, Session: s}))
	}
}

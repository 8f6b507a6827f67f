// Package chat implements one-to-one conversations: the message log,
// the voice note recording lifecycle and transient audio playback.
package chat

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/media"
	"go.uber.org/zap"
)

// ErrAlreadyRecording is returned when a recording is already running.
var ErrAlreadyRecording = errors.New("chat: recording already in progress")

// recording tracks one in-flight voice note capture.
type recording struct {
	stream  *media.Stream
	started time.Time
	ticker  *time.Ticker
	done    chan struct{}
}

// Session is the conversation with a single contact. All methods are
// safe for concurrent use.
type Session struct {
	ContactID string

	device media.Device
	bus    *bus.Bus
	log    *zap.Logger
	recDir string

	mu       sync.Mutex
	messages []Message
	rec      *recording
	playing  string // message ID with active playback, "" if none
	now      func() time.Time
}

// NewSession creates an empty conversation with the given contact.
func NewSession(contactID string, device media.Device, b *bus.Bus, log *zap.Logger) *Session {
	return &Session{
		ContactID: contactID,
		device:    device,
		bus:       b,
		log:       log,
		now:       time.Now,
	}
}

// Messages returns the conversation log in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Append adds an incoming message to the log.
func (s *Session) Append(m Message) {
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
	s.publish(bus.KindChatMessage, m)
}

// SendText appends an outgoing text message. Drafts with no visible
// characters are dropped without error or log entry.
func (s *Session) SendText(body string) (Message, bool) {
	if strings.TrimSpace(body) == "" {
		return Message{}, false
	}
	m := NewText(body, true)
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
	s.publish(bus.KindChatMessage, m)
	return m, true
}

// Recording reports whether a voice note capture is running and, if so,
// how long it has been running.
func (s *Session) Recording() (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return false, 0
	}
	return true, s.now().Sub(s.rec.started)
}

// StartRecording acquires the microphone and begins a voice note.
// A second call while recording returns ErrAlreadyRecording. Device
// errors pass through unchanged so the UI can show the right notice.
func (s *Session) StartRecording() error {
	s.mu.Lock()
	if s.rec != nil {
		s.mu.Unlock()
		return ErrAlreadyRecording
	}
	s.mu.Unlock()

	// Acquire outside the lock: device access can block.
	stream, err := s.device.Acquire(media.Constraints{Audio: true})
	if err != nil {
		if s.log != nil {
			s.log.Warn("microphone acquire failed", zap.String("contact", s.ContactID), zap.Error(err))
		}
		return err
	}

	s.mu.Lock()
	if s.rec != nil {
		// Lost the race to another StartRecording.
		s.mu.Unlock()
		stream.Close()
		return ErrAlreadyRecording
	}
	rec := &recording{
		stream:  stream,
		started: s.now(),
		ticker:  time.NewTicker(time.Second),
		done:    make(chan struct{}),
	}
	s.rec = rec
	s.mu.Unlock()

	go s.tickRecording(rec)
	return nil
}

// tickRecording publishes the elapsed seconds once per second so the
// input bar can show a counter.
func (s *Session) tickRecording(rec *recording) {
	for {
		select {
		case <-rec.done:
			return
		case t := <-rec.ticker.C:
			s.publish(bus.KindChatRecordingTick, int(t.Sub(rec.started).Seconds()))
		}
	}
}

// StopRecording ends the capture and appends the voice note. Calling it
// with no recording running is a no-op. The stream is always released,
// even on the no-message cancel path.
func (s *Session) StopRecording() (Message, bool) {
	rec, elapsed := s.takeRecording()
	if rec == nil {
		return Message{}, false
	}

	m := NewAudio(s.audioRef(), elapsed, true)
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
	s.publish(bus.KindChatMessage, m)
	return m, true
}

// CancelRecording discards the capture without producing a message.
// A no-op when nothing is recording.
func (s *Session) CancelRecording() {
	s.takeRecording()
}

// takeRecording detaches and tears down the active recording, returning
// it and the elapsed time. Returns nil when nothing was recording.
func (s *Session) takeRecording() (*recording, time.Duration) {
	s.mu.Lock()
	rec := s.rec
	s.rec = nil
	var elapsed time.Duration
	if rec != nil {
		elapsed = s.now().Sub(rec.started)
	}
	s.mu.Unlock()

	if rec == nil {
		return nil, 0
	}
	rec.ticker.Stop()
	close(rec.done)
	rec.stream.Close()
	return rec, elapsed
}

// audioRef names the recording file inside the profile's recordings
// directory. No audio bytes exist behind it while capture is stubbed.
func (s *Session) audioRef() string {
	return filepath.Join(s.recDir, "voice-"+uuid.NewString()+".ogg")
}

// seedHistory preloads the demo conversation. Used once per session by
// the manager; no events are published.
func (s *Session) seedHistory() {
	base := s.now().Add(-10 * time.Minute)
	s.mu.Lock()
	s.messages = append(s.messages,
		Message{ID: uuid.NewString(), Kind: KindText, SentAt: base, Body: "Hey, how's it going?"},
		Message{ID: uuid.NewString(), Kind: KindText, FromMe: true, SentAt: base.Add(time.Minute), Body: "Pretty good! Just working on that new project. You?"},
		Message{ID: uuid.NewString(), Kind: KindText, SentAt: base.Add(time.Minute), Body: "Same here. It's coming along nicely."},
	)
	s.mu.Unlock()
}

// Playing returns the ID of the message under playback, or "".
func (s *Session) Playing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Play starts transient playback of an audio message, publishing a
// progress percentage once per second. Playback state is not part of
// the message and never persists. Starting playback replaces any
// previous one.
func (s *Session) Play(messageID string) bool {
	s.mu.Lock()
	var target *Message
	for i := range s.messages {
		if s.messages[i].ID == messageID && s.messages[i].Kind == KindAudio {
			target = &s.messages[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return false
	}
	s.playing = messageID
	duration := target.Duration
	s.mu.Unlock()

	go s.tickPlayback(messageID, duration)
	return true
}

// PlaybackTick is the payload for playback progress events.
type PlaybackTick struct {
	MessageID string
	Percent   int
}

func (s *Session) tickPlayback(messageID string, duration time.Duration) {
	total := int(duration.Seconds())
	if total <= 0 {
		total = 1
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for elapsed := 1; ; elapsed++ {
		<-ticker.C
		s.mu.Lock()
		if s.playing != messageID {
			// Replaced or stopped.
			s.mu.Unlock()
			return
		}
		pct := elapsed * 100 / total
		if pct >= 100 {
			pct = 100
			s.playing = ""
		}
		s.mu.Unlock()

		s.publish(bus.KindChatPlaybackTick, PlaybackTick{MessageID: messageID, Percent: pct})
		if pct >= 100 {
			return
		}
	}
}

// StopPlayback halts any active playback.
func (s *Session) StopPlayback() {
	s.mu.Lock()
	s.playing = ""
	s.mu.Unlock()
}

// Close tears down any in-flight recording and playback.
func (s *Session) Close() {
	s.CancelRecording()
	s.StopPlayback()
}

func (s *Session) publish(kind string, payload any) {
	if s.bus != nil {
		s.bus.Publish(bus.Now(kind, payload))
	}
}

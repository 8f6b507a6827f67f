// Package media models capture-device ownership. Streams hand out
// tracks whose stop is idempotent, so teardown paths can be
// unconditional.
package media

import (
	"errors"
	"sync"
)

// Sentinel errors surfaced to the user as blocking notices.
var (
	ErrPermissionDenied  = errors.New("media: permission denied")
	ErrDeviceUnavailable = errors.New("media: device unavailable")
	ErrDeviceBusy        = errors.New("media: device already in use")
)

// TrackKind distinguishes audio from video tracks.
type TrackKind string

const (
	TrackAudio TrackKind = "audio"
	TrackVideo TrackKind = "video"
)

// Constraints describes which tracks a stream should carry.
type Constraints struct {
	Audio bool
	Video bool
}

// Device grants exclusive access to capture hardware.
type Device interface {
	// Acquire opens a stream with the requested tracks. At most one
	// stream may be live at a time; a second Acquire before Close
	// returns ErrDeviceBusy.
	Acquire(c Constraints) (*Stream, error)
}

// Track is a single live capture track.
type Track struct {
	kind TrackKind

	mu      sync.Mutex
	enabled bool
	stopped bool
	onStop  func()
}

// Kind returns the track kind.
func (t *Track) Kind() TrackKind { return t.kind }

// Enabled reports whether the track is producing data.
func (t *Track) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled && !t.stopped
}

// SetEnabled pauses or resumes the track without releasing the device.
func (t *Track) SetEnabled(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.enabled = on
}

// Stop permanently stops the track. Safe to call more than once.
func (t *Track) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	t.enabled = false
	onStop := t.onStop
	t.mu.Unlock()
	if onStop != nil {
		onStop()
	}
}

// Stopped reports whether the track has been stopped.
func (t *Track) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Stream is a set of live tracks from one Acquire call.
type Stream struct {
	tracks []*Track

	mu      sync.Mutex
	closed  bool
	onClose func()
}

// Tracks returns all tracks in the stream.
func (s *Stream) Tracks() []*Track { return s.tracks }

// Track returns the first track of the given kind, or nil.
func (s *Stream) Track(kind TrackKind) *Track {
	for _, t := range s.tracks {
		if t.kind == kind {
			return t
		}
	}
	return nil
}

// LiveTracks counts tracks that have not been stopped.
func (s *Stream) LiveTracks() int {
	n := 0
	for _, t := range s.tracks {
		if !t.Stopped() {
			n++
		}
	}
	return n
}

// Close stops every track and releases the device. Idempotent.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	onClose := s.onClose
	s.mu.Unlock()

	for _, t := range s.tracks {
		t.Stop()
	}
	if onClose != nil {
		onClose()
	}
}

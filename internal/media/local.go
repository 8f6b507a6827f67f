package media

import "sync"

// LocalDevice is an in-process Device implementation. It enforces the
// exclusive-ownership rule and can be configured to simulate denied
// permissions or missing hardware.
type LocalDevice struct {
	mu     sync.Mutex
	inUse  bool
	deny   error
	hasCam bool
	hasMic bool
}

// NewLocalDevice creates a device with both a microphone and a camera.
func NewLocalDevice() *LocalDevice {
	return &LocalDevice{hasMic: true, hasCam: true}
}

// SetDenied makes every subsequent Acquire fail with err, or clears the
// failure when err is nil.
func (d *LocalDevice) SetDenied(err error) {
	d.mu.Lock()
	d.deny = err
	d.mu.Unlock()
}

// SetHardware controls which capture hardware is present.
func (d *LocalDevice) SetHardware(mic, cam bool) {
	d.mu.Lock()
	d.hasMic = mic
	d.hasCam = cam
	d.mu.Unlock()
}

// Acquire implements Device.
func (d *LocalDevice) Acquire(c Constraints) (*Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.deny != nil {
		return nil, d.deny
	}
	if c.Audio && !d.hasMic {
		return nil, ErrDeviceUnavailable
	}
	if c.Video && !d.hasCam {
		return nil, ErrDeviceUnavailable
	}
	if d.inUse {
		return nil, ErrDeviceBusy
	}

	var tracks []*Track
	if c.Audio {
		tracks = append(tracks, &Track{kind: TrackAudio, enabled: true})
	}
	if c.Video {
		tracks = append(tracks, &Track{kind: TrackVideo, enabled: true})
	}

	d.inUse = true
	s := &Stream{tracks: tracks}
	s.onClose = func() {
		d.mu.Lock()
		d.inUse = false
		d.mu.Unlock()
	}
	return s, nil
}

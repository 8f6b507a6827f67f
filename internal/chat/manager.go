package chat

import (
	"sync"

	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/media"
	"go.uber.org/zap"
)

// Manager hands out one Session per contact, creating them lazily.
// Sessions live for the process lifetime only.
type Manager struct {
	device media.Device
	bus    *bus.Bus
	log    *zap.Logger
	recDir string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager. Voice note refs are placed
// under recDir.
func NewManager(device media.Device, b *bus.Bus, log *zap.Logger, recDir string) *Manager {
	return &Manager{
		device:   device,
		bus:      b,
		log:      log,
		recDir:   recDir,
		sessions: make(map[string]*Session),
	}
}

// Session returns the conversation for contactID, creating it if needed.
// New sessions open with the demo history.
func (m *Manager) Session(contactID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[contactID]
	if !ok {
		s = NewSession(contactID, m.device, m.bus, m.log)
		s.recDir = m.recDir
		s.seedHistory()
		m.sessions[contactID] = s
	}
	return s
}

// Close tears down all sessions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.Close()
	}
}

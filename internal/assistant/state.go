package assistant

import (
	"fmt"
	"slices"
	"sync"

	"github.com/inovira/inovira/internal/bus"
)

// State represents the assistant conversation state.
type State string

const (
	Idle      State = "IDLE"
	Sending   State = "SENDING"
	Streaming State = "STREAMING"
)

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	Idle:      {Sending},
	Sending:   {Streaming, Idle},
	Streaming: {Idle},
}

// machine tracks and enforces assistant state transitions.
type machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

func newMachine(b *bus.Bus) *machine {
	return &machine{
		current: Idle,
		bus:     b,
	}
}

// Current returns the current state.
func (m *machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	if m.bus != nil {
		m.bus.Publish(bus.Now(bus.KindAssistantState, StateChange{From: from, To: to}))
	}
	return nil
}

// StateChange is the payload for assistant state events.
type StateChange struct {
	From State
	To   State
}

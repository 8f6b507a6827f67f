// Package contacts provides the in-memory contact directory shown in
// the chat list.
package contacts

import "sync"

// Presence is a contact's connection state.
type Presence string

const (
	Online  Presence = "online"
	Offline Presence = "offline"
)

// AssistantID is the reserved contact ID of the built-in AI assistant.
const AssistantID = "ai-assistant"

// Contact is an entry in the chat list.
type Contact struct {
	ID          string
	Name        string
	Handle      string
	Presence    Presence
	LastMessage string
	IsAssistant bool
}

// Directory holds the contact list.
type Directory struct {
	mu       sync.RWMutex
	contacts []Contact
}

// NewDirectory returns a directory seeded with the demo contacts. The
// assistant is always first.
func NewDirectory() *Directory {
	return &Directory{
		contacts: []Contact{
			{
				ID:          AssistantID,
				Name:        "AI Assistant",
				Handle:      "@assistant",
				Presence:    Online,
				LastMessage: "Ask me anything!",
				IsAssistant: true,
			},
			{
				ID:          "elena",
				Name:        "Elena Rodriguez",
				Handle:      "@elena_r",
				Presence:    Online,
				LastMessage: "See you at the gallery later?",
			},
			{
				ID:          "aisha",
				Name:        "Aisha Khan",
				Handle:      "@aisha.codes",
				Presence:    Offline,
				LastMessage: "The PR is ready for review",
			},
			{
				ID:          "liam",
				Name:        "Liam Smith",
				Handle:      "@liamsmith",
				Presence:    Offline,
				LastMessage: "Thanks for the recs!",
			},
		},
	}
}

// List returns a copy of all contacts in display order.
func (d *Directory) List() []Contact {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}

// Get returns the contact with the given ID.
func (d *Directory) Get(id string) (Contact, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// SetLastMessage updates a contact's chat-list preview line.
func (d *Directory) SetLastMessage(id, preview string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.contacts {
		if d.contacts[i].ID == id {
			d.contacts[i].LastMessage = preview
			return
		}
	}
}

package chat

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags the message union.
type Kind string

const (
	KindText  Kind = "text"
	KindAudio Kind = "audio"
)

// Message is a single chat entry. Exactly one of the kind-specific
// payloads is meaningful: Body for text, AudioRef plus Duration for
// audio. Messages are immutable once appended.
type Message struct {
	ID       string
	Kind     Kind
	FromMe   bool
	SentAt   time.Time
	Body     string
	AudioRef string
	Duration time.Duration
}

// NewText builds a text message.
func NewText(body string, fromMe bool) Message {
	return Message{
		ID:     uuid.NewString(),
		Kind:   KindText,
		FromMe: fromMe,
		SentAt: time.Now(),
		Body:   body,
	}
}

// NewAudio builds a voice note message pointing at a recording file.
func NewAudio(audioRef string, duration time.Duration, fromMe bool) Message {
	return Message{
		ID:       uuid.NewString(),
		Kind:     KindAudio,
		FromMe:   fromMe,
		SentAt:   time.Now(),
		AudioRef: audioRef,
		Duration: duration,
	}
}

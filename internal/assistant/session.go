// Package assistant runs the built-in AI chat. One request may be in
// flight at a time; the streamed reply folds into a single message that
// grows chunk by chunk.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovira/inovira/internal/ai"
	"github.com/inovira/inovira/internal/bus"
	"go.uber.org/zap"
)

// ErrBusy is returned when a request is already in flight.
var ErrBusy = errors.New("assistant: request already in progress")

// Role distinguishes the two speakers.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the assistant conversation.
type Message struct {
	ID      string
	Role    Role
	Body    string
	SentAt  time.Time
	Pending bool // reply still streaming
	Failed  bool // reply replaced by the error text
}

// Session is the assistant conversation. The model client owns the
// LLM-side history; this type owns what the user sees.
type Session struct {
	client    ai.Client
	bus       *bus.Bus
	log       *zap.Logger
	translate func(key string) string

	machine *machine

	mu       sync.Mutex
	messages []Message
	greeted  bool // user has sent at least one message
}

// NewSession creates an assistant session opening with the localized
// welcome message.
func NewSession(client ai.Client, b *bus.Bus, log *zap.Logger, translate func(key string) string) *Session {
	if translate == nil {
		translate = func(key string) string { return key }
	}
	s := &Session{
		client:    client,
		bus:       b,
		log:       log,
		translate: translate,
		machine:   newMachine(b),
	}
	s.messages = []Message{{
		ID:     uuid.NewString(),
		Role:   RoleAssistant,
		Body:   translate("aiWelcome"),
		SentAt: time.Now(),
	}}
	return s
}

// State returns the current conversation state.
func (s *Session) State() State {
	return s.machine.Current()
}

// Messages returns the conversation in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// RefreshWelcome re-renders the welcome message in the current
// language. Once the user has spoken the history is immutable and the
// call does nothing.
func (s *Session) RefreshWelcome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.greeted {
		return
	}
	if len(s.messages) == 1 && s.messages[0].Role == RoleAssistant {
		s.messages[0].Body = s.translate("aiWelcome")
	}
}

// Send submits a user message and blocks until the streamed reply is
// complete. Blank messages are dropped silently. A second Send while
// one is running returns ErrBusy. On any model failure the fixed error
// text is appended, any partial reply is kept as streamed, and the
// session returns to Idle.
func (s *Session) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := s.machine.Transition(Sending); err != nil {
		return ErrBusy
	}

	userID := uuid.NewString()
	s.mu.Lock()
	s.greeted = true
	s.messages = append(s.messages, Message{
		ID:     userID,
		Role:   RoleUser,
		Body:   text,
		SentAt: time.Now(),
	})
	s.mu.Unlock()
	s.publishChunk(userID, "")

	// The reply placeholder is created on the first chunk; every later
	// chunk folds into it.
	var replyID string
	err := s.client.ChatStream(ctx, text, func(chunk string) {
		if replyID == "" {
			replyID = s.openReply()
			_ = s.machine.Transition(Streaming)
		}
		s.appendChunk(replyID, chunk)
	})

	if err != nil {
		if s.log != nil {
			s.log.Warn("assistant request failed", zap.Error(err))
		}
		// Whatever streamed stays; the error is its own message.
		s.finishReply(replyID)
		s.appendError()
		_ = s.machine.Transition(Idle)
		return err
	}

	s.finishReply(replyID)
	_ = s.machine.Transition(Idle)
	return nil
}

// openReply appends the pending placeholder the stream folds into.
func (s *Session) openReply() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.messages = append(s.messages, Message{
		ID:      id,
		Role:    RoleAssistant,
		SentAt:  time.Now(),
		Pending: true,
	})
	s.mu.Unlock()
	return id
}

func (s *Session) appendChunk(replyID, chunk string) {
	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID == replyID {
			s.messages[i].Body += chunk
			break
		}
	}
	s.mu.Unlock()
	s.publishChunk(replyID, chunk)
}

// finishReply freezes the placeholder. A no-op when no chunk ever
// arrived.
func (s *Session) finishReply(replyID string) {
	if replyID == "" {
		return
	}
	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID == replyID {
			s.messages[i].Pending = false
			break
		}
	}
	s.mu.Unlock()
	s.publishChunk(replyID, "")
}

// appendError adds the fixed localized failure message.
func (s *Session) appendError() {
	id := uuid.NewString()
	s.mu.Lock()
	s.messages = append(s.messages, Message{
		ID:     id,
		Role:   RoleAssistant,
		Body:   s.translate("aiError"),
		SentAt: time.Now(),
		Failed: true,
	})
	s.mu.Unlock()
	s.publishChunk(id, "")
}

type chunkEvent struct {
	MessageID string
	Chunk     string
}

func (s *Session) publishChunk(replyID, chunk string) {
	if s.bus != nil {
		s.bus.Publish(bus.Now(bus.KindAssistantChunk, chunkEvent{MessageID: replyID, Chunk: chunk}))
	}
}

package ai

import (
	"context"
	"sync"
)

// Scripted is a Client backed by canned responses, for tests and for
// running the TUI without a model server.
type Scripted struct {
	mu sync.Mutex

	// GenerateResult is returned by Generate when GenerateErr is nil.
	GenerateResult string
	GenerateErr    error

	// Chunks are emitted one by one on ChatStream when ChatErr is nil.
	Chunks  []string
	ChatErr error

	// FailAfter, when > 0, emits that many chunks before returning ChatErr.
	FailAfter int

	resets int
	sent   []string
}

// Generate returns the scripted result.
func (s *Scripted) Generate(_ context.Context, _ string) (string, error) {
	if s.GenerateErr != nil {
		return "", s.GenerateErr
	}
	return s.GenerateResult, nil
}

// ChatStream records the message and replays the scripted chunks.
func (s *Scripted) ChatStream(ctx context.Context, message string, onChunk func(chunk string)) error {
	s.mu.Lock()
	s.sent = append(s.sent, message)
	s.mu.Unlock()

	if s.ChatErr != nil && s.FailAfter <= 0 {
		return s.ChatErr
	}
	for i, chunk := range s.Chunks {
		if err := ctx.Err(); err != nil {
			return ErrCanceled
		}
		onChunk(chunk)
		if s.ChatErr != nil && i+1 >= s.FailAfter {
			return s.ChatErr
		}
	}
	return nil
}

// Reset counts invocations.
func (s *Scripted) Reset() {
	s.mu.Lock()
	s.resets++
	s.mu.Unlock()
}

// Sent returns the messages passed to ChatStream so far.
func (s *Scripted) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	copy(out, s.sent)
	return out
}

// Resets returns how many times Reset was called.
func (s *Scripted) Resets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resets
}

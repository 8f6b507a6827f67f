// Package ai talks to a local Ollama-compatible model server. It backs
// the assistant chat and the post text enhancer.
package ai

import (
	"context"
	"errors"
)

// Sentinel errors callers can match with errors.Is.
var (
	ErrUnavailable = errors.New("ai: model server unavailable")
	ErrGeneration  = errors.New("ai: generation failed")
	ErrCanceled    = errors.New("ai: request canceled")
)

// Client is the model-server surface the app depends on.
type Client interface {
	// Generate produces a single completion for prompt. Used by the
	// post enhancer.
	Generate(ctx context.Context, prompt string) (string, error)

	// ChatStream sends a user message within the running conversation
	// and invokes onChunk for every response fragment, in order. The
	// implementation owns the conversation history.
	ChatStream(ctx context.Context, message string, onChunk func(chunk string)) error

	// Reset clears the conversation history.
	Reset()
}

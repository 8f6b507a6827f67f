package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const systemPrompt = "You are a friendly and helpful AI assistant inside a " +
	"social networking app. Keep answers concise and conversational."

const enhancePrompt = "Rewrite the following social media post to be more " +
	"engaging and polished. Keep the author's voice and intent. Return only " +
	"the rewritten post, nothing else.\n\nPost: %s"

// OllamaClient implements Client against the Ollama HTTP API.
type OllamaClient struct {
	baseURL string
	model   string
	http    *http.Client
	log     *zap.Logger

	mu      sync.Mutex
	history []chatMessage
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewOllamaClient creates a client for the given server and model.
func NewOllamaClient(baseURL, model string, log *zap.Logger) *OllamaClient {
	return &OllamaClient{
		baseURL: baseURL,
		model:   model,
		http: &http.Client{
			// No overall timeout: streams can legitimately run long.
			// Connection establishment is bounded below.
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
		log:     log,
		history: []chatMessage{{Role: "system", Content: systemPrompt}},
	}
}

// Generate produces a single non-streamed completion.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: fmt.Sprintf(enhancePrompt, prompt),
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	resp, err := c.post(ctx, "/api/generate", body)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrGeneration, err)
	}
	return out.Response, nil
}

// ChatStream appends the user message to the conversation, streams the
// reply chunk by chunk and records the full reply in the history.
func (c *OllamaClient) ChatStream(ctx context.Context, message string, onChunk func(chunk string)) error {
	c.mu.Lock()
	c.history = append(c.history, chatMessage{Role: "user", Content: message})
	messages := make([]chatMessage, len(c.history))
	copy(messages, c.history)
	c.mu.Unlock()

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	resp, err := c.post(ctx, "/api/chat", body)
	if err != nil {
		c.dropLastUserMessage()
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	// Responses arrive as one JSON object per line.
	var full bytes.Buffer
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var chunk chatResponse
		if err := json.Unmarshal(line, &chunk); err != nil {
			c.dropLastUserMessage()
			return fmt.Errorf("%w: decode chunk: %v", ErrGeneration, err)
		}
		if chunk.Message.Content != "" {
			full.WriteString(chunk.Message.Content)
			onChunk(chunk.Message.Content)
		}
		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		c.dropLastUserMessage()
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
		}
		return fmt.Errorf("%w: read stream: %v", ErrGeneration, err)
	}

	c.mu.Lock()
	c.history = append(c.history, chatMessage{Role: "assistant", Content: full.String()})
	c.mu.Unlock()
	return nil
}

// Reset clears the conversation, keeping the system prompt.
func (c *OllamaClient) Reset() {
	c.mu.Lock()
	c.history = []chatMessage{{Role: "system", Content: systemPrompt}}
	c.mu.Unlock()
}

func (c *OllamaClient) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
		}
		if c.log != nil {
			c.log.Warn("model server request failed", zap.String("path", path), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
		if c.log != nil {
			c.log.Warn("model server error",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", msg),
			)
		}
		return nil, fmt.Errorf("%w: status %d", ErrGeneration, resp.StatusCode)
	}
	return resp, nil
}

// dropLastUserMessage removes the optimistically appended user turn so a
// failed request does not poison the next one.
func (c *OllamaClient) dropLastUserMessage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := len(c.history); n > 0 && c.history[n-1].Role == "user" {
		c.history = c.history[:n-1]
	}
}

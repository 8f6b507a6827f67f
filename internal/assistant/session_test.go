package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/inovira/inovira/internal/ai"
	"github.com/inovira/inovira/internal/bus"
)

func TestInitialState(t *testing.T) {
	s := NewSession(&ai.Scripted{}, bus.New(), nil, nil)
	if s.State() != Idle {
		t.Errorf("initial state = %s, want IDLE", s.State())
	}
	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleAssistant {
		t.Fatalf("messages = %+v, want single assistant welcome", msgs)
	}
}

func TestChunksFoldIntoOneMessage(t *testing.T) {
	s := NewSession(&ai.Scripted{Chunks: []string{"Hel", "lo", "!"}}, bus.New(), nil, nil)

	if err := s.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	msgs := s.Messages()
	// welcome + user + one reply
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	reply := msgs[2]
	if reply.Role != RoleAssistant {
		t.Errorf("reply role = %s, want assistant", reply.Role)
	}
	if reply.Body != "Hello!" {
		t.Errorf("reply body = %q, want Hello!", reply.Body)
	}
	if reply.Pending {
		t.Error("reply still pending after Send returned")
	}
	if s.State() != Idle {
		t.Errorf("state = %s, want IDLE", s.State())
	}
}

func TestBlankSendIsNoop(t *testing.T) {
	client := &ai.Scripted{Chunks: []string{"x"}}
	s := NewSession(client, bus.New(), nil, nil)

	if err := s.Send(context.Background(), "   \n"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(s.Messages()) != 1 {
		t.Error("blank send grew the conversation")
	}
	if len(client.Sent()) != 0 {
		t.Error("blank send reached the model")
	}
}

func TestFailureYieldsFixedErrorText(t *testing.T) {
	translate := func(key string) string {
		if key == "aiError" {
			return "Sorry, I ran into a problem."
		}
		return key
	}
	s := NewSession(&ai.Scripted{ChatErr: ai.ErrUnavailable}, bus.New(), nil, translate)

	err := s.Send(context.Background(), "hi")
	if !errors.Is(err, ai.ErrUnavailable) {
		t.Fatalf("Send() error = %v, want ErrUnavailable", err)
	}

	msgs := s.Messages()
	// welcome + user + error; no placeholder was ever opened.
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	reply := msgs[len(msgs)-1]
	if reply.Body != "Sorry, I ran into a problem." {
		t.Errorf("reply body = %q, want fixed error text", reply.Body)
	}
	if !reply.Failed || reply.Pending {
		t.Errorf("reply flags = %+v, want Failed and not Pending", reply)
	}
	if s.State() != Idle {
		t.Errorf("state = %s, want IDLE after failure", s.State())
	}
}

func TestMidStreamFailureKeepsPartialAndAppendsError(t *testing.T) {
	s := NewSession(&ai.Scripted{Chunks: []string{"par", "tial"}, ChatErr: ai.ErrGeneration, FailAfter: 1}, bus.New(), nil, nil)

	if err := s.Send(context.Background(), "hi"); err == nil {
		t.Fatal("Send() should fail")
	}

	msgs := s.Messages()
	// welcome + user + partial reply + error message
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	partial := msgs[2]
	if partial.Body != "par" || partial.Pending || partial.Failed {
		t.Errorf("partial reply = %+v, want frozen streamed text", partial)
	}
	last := msgs[3]
	if last.Body != "aiError" || !last.Failed {
		t.Errorf("last message = %+v, want the fixed error text", last)
	}
	if s.State() != Idle {
		t.Errorf("state = %s, want IDLE", s.State())
	}
}

// streamingClient blocks mid-stream so the test can observe the
// STREAMING state and the busy rejection.
type streamingClient struct {
	entered chan struct{}
	release chan struct{}
}

func (c *streamingClient) Generate(context.Context, string) (string, error) { return "", nil }
func (c *streamingClient) Reset() {}

func (c *streamingClient) ChatStream(_ context.Context, _ string, onChunk func(string)) error {
	onChunk("first")
	close(c.entered)
	<-c.release
	onChunk(" second")
	return nil
}

func TestConcurrentSendRejected(t *testing.T) {
	client := &streamingClient{entered: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(client, bus.New(), nil, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Send(context.Background(), "long question")
	}()

	<-client.entered
	if s.State() != Streaming {
		t.Errorf("state = %s, want STREAMING", s.State())
	}
	if err := s.Send(context.Background(), "impatient"); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent Send() error = %v, want ErrBusy", err)
	}

	close(client.release)
	wg.Wait()

	if s.State() != Idle {
		t.Errorf("state = %s, want IDLE", s.State())
	}
	msgs := s.Messages()
	if got := msgs[len(msgs)-1].Body; got != "first second" {
		t.Errorf("reply body = %q, want first second", got)
	}
}

func TestWelcomeFollowsLanguageUntilFirstMessage(t *testing.T) {
	lang := "en"
	greetings := map[string]string{"en": "Hello!", "es": "Hola!"}
	translate := func(key string) string {
		if key == "aiWelcome" {
			return greetings[lang]
		}
		return key
	}
	s := NewSession(&ai.Scripted{Chunks: []string{"ok"}}, bus.New(), nil, translate)

	if got := s.Messages()[0].Body; got != "Hello!" {
		t.Errorf("welcome = %q, want Hello!", got)
	}

	lang = "es"
	s.RefreshWelcome()
	if got := s.Messages()[0].Body; got != "Hola!" {
		t.Errorf("welcome after language change = %q, want Hola!", got)
	}

	if err := s.Send(context.Background(), "hi"); err != nil {
		t.Fatal(err)
	}
	lang = "en"
	s.RefreshWelcome()
	if got := s.Messages()[0].Body; got != "Hola!" {
		t.Errorf("welcome changed after first message: %q", got)
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
		ok   bool
	}{
		{Idle, Sending, true},
		{Sending, Streaming, true},
		{Sending, Idle, true},
		{Streaming, Idle, true},
		{Idle, Streaming, false},
		{Idle, Idle, false},
		{Streaming, Sending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			m := newMachine(nil)
			m.current = tt.from
			err := m.Transition(tt.to)
			if (err == nil) != tt.ok {
				t.Errorf("Transition(%s -> %s) error = %v, want ok=%v", tt.from, tt.to, err, tt.ok)
			}
		})
	}
}

func TestTransitionEmitsEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("assistant.", 10)
	defer unsub()

	m := newMachine(b)
	if err := m.Transition(Sending); err != nil {
		t.Fatal(err)
	}

	evt := <-ch
	if evt.Kind != bus.KindAssistantState {
		t.Errorf("event kind = %q, want %q", evt.Kind, bus.KindAssistantState)
	}
	change, ok := evt.Payload.(StateChange)
	if !ok {
		t.Fatalf("payload type = %T, want StateChange", evt.Payload)
	}
	if change.From != Idle || change.To != Sending {
		t.Errorf("change = %v -> %v, want IDLE -> SENDING", change.From, change.To)
	}
}

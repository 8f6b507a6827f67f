package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("prefs.", 10)
	defer unsub()

	b.Publish(Now(KindPrefsChanged, "theme"))

	select {
	case evt := <-ch:
		if evt.Kind != KindPrefsChanged {
			t.Errorf("got kind %q, want %q", evt.Kind, KindPrefsChanged)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("chat.", 10)
	defer unsub()

	b.Publish(Now(KindPrefsChanged, nil))
	b.Publish(Now(KindChatMessage, nil))

	select {
	case evt := <-ch:
		if evt.Kind != KindChatMessage {
			t.Errorf("got kind %q, want %q", evt.Kind, KindChatMessage)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	// Ensure prefs event was not delivered.
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
		// Expected: no more events.
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("call.", 10)
	unsub()

	b.Publish(Now(KindCallState, nil))

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
		// Expected.
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("assistant.", 1)
	defer unsub()

	b.Publish(Now(KindAssistantChunk, "one"))
	// This should be dropped (non-blocking).
	b.Publish(Now(KindAssistantChunk, "two"))

	evt := <-ch
	if evt.Payload != "one" {
		t.Errorf("got payload %v, want one", evt.Payload)
	}
}

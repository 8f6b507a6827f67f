package bus

import "time"

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Event kinds. Subscribers filter on namespace prefixes such as "prefs."
// or "chat.".
const (
	KindPrefsChanged = "prefs.changed"

	KindFeedPosted    = "feed.posted"
	KindFeedEnhancing = "feed.enhancing"

	KindChatMessage       = "chat.message"
	KindChatRecordingTick = "chat.recording_tick"
	KindChatPlaybackTick  = "chat.playback_tick"
	KindChatPresence      = "chat.presence"

	KindAssistantState = "assistant.state"
	KindAssistantChunk = "assistant.chunk"

	KindCallState = "call.state"

	KindNoticeError = "notice.error"
)

// Now is a convenience constructor stamping the event with the current time.
func Now(kind string, payload any) Event {
	return Event{Kind: kind, Timestamp: time.Now(), Payload: payload}
}

package tui

import (
	"testing"
	"time"
)

func TestFlashSetGet(t *testing.T) {
	var f Flash
	f.Set(FlashErr, "microphone denied", time.Minute)

	msg, level := f.Get()
	if msg != "microphone denied" {
		t.Errorf("message = %q", msg)
	}
	if level != FlashErr {
		t.Errorf("level = %v, want FlashErr", level)
	}
}

func TestFlashExpires(t *testing.T) {
	var f Flash
	f.Set(FlashInfo, "hi", -time.Second)

	if msg, _ := f.Get(); msg != "" {
		t.Errorf("expired flash returned %q", msg)
	}
}

func TestFlashClear(t *testing.T) {
	var f Flash
	f.Set(FlashWarn, "hi", time.Minute)
	f.Clear()

	if msg, _ := f.Get(); msg != "" {
		t.Errorf("cleared flash returned %q", msg)
	}
}

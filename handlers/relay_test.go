package handlers

import (
	"testing"
	"time"
)

func TestMessageLimiterWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var l messageLimiter

	// Exactly 5 messages fit in one window.
	for i := 0; i < 5; i++ {
		if !l.allow(start.Add(time.Duration(i) * 100 * time.Millisecond)) {
			t.Fatalf("message %d rejected inside the window", i+1)
		}
	}

	// The 6th within the same window is dropped.
	if l.allow(start.Add(600 * time.Millisecond)) {
		t.Error("6th message in the window allowed")
	}

	// Rollover resets the counter.
	later := start.Add(1100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if !l.allow(later.Add(time.Duration(i) * time.Millisecond)) {
			t.Fatalf("message %d rejected after window rollover", i+1)
		}
	}
	if l.allow(later.Add(10 * time.Millisecond)) {
		t.Error("6th message after rollover allowed")
	}
}

func TestMessageLimiterFreshCounterPerConnection(t *testing.T) {
	now := time.Now()

	exhausted := &messageLimiter{}
	for i := 0; i < 6; i++ {
		exhausted.allow(now)
	}
	if exhausted.allow(now) {
		t.Fatal("exhausted limiter still allowing")
	}

	// A new connection gets a fresh counter.
	fresh := &messageLimiter{}
	if !fresh.allow(now) {
		t.Error("fresh limiter rejected its first message")
	}
}

func TestHubJoinLeaveBroadcast(t *testing.T) {
	h := &relayHub{rooms: make(map[string]map[*relayClient]bool)}

	a := &relayClient{id: "a", send: make(chan RelayMessage, 4), rooms: make(map[string]bool)}
	b := &relayClient{id: "b", send: make(chan RelayMessage, 4), rooms: make(map[string]bool)}

	h.join(a, "room1")
	h.join(b, "room1")

	h.broadcast("room1", RelayMessage{Type: "gameUpdate", Room: "room1"})
	for _, cl := range []*relayClient{a, b} {
		select {
		case msg := <-cl.send:
			if msg.Type != "gameUpdate" {
				t.Errorf("client %s got %q, want gameUpdate", cl.id, msg.Type)
			}
		default:
			t.Errorf("client %s got nothing", cl.id)
		}
	}

	h.leave(b, "room1")
	h.broadcast("room1", RelayMessage{Type: "gameUpdate", Room: "room1"})
	select {
	case <-b.send:
		t.Error("departed client still receiving")
	default:
	}

	// Removing the last member tears the room down.
	h.remove(a)
	if len(h.rooms) != 0 {
		t.Errorf("empty rooms not cleaned up: %d left", len(h.rooms))
	}
}

// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package websocket

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sidequest-dev/sidequest/internal/models"
)

// waitForClientCount polls the hub until it reports the expected client count
// or the deadline passes.
func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.GetClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", hub.GetClientCount(), want)
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestNewHub(t *testing.T) {
	hub := NewHub()
	if hub == nil {
		t.Fatal("NewHub returned nil")
	}
	if got := hub.GetClientCount(); got != 0 {
		t.Errorf("new hub client count = %d, want 0", got)
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- hub.RunWithContext(ctx)
	}()

	client := NewClient(hub, nil)
	hub.Register <- client
	waitForClientCount(t, hub, 1)

	hub.Unregister <- client
	waitForClientCount(t, hub, 0)

	// Unregistering closes the send channel.
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("send channel was not closed after unregister")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop after context cancellation")
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- hub.RunWithContext(ctx)
	}()

	first := NewClient(hub, nil)
	second := NewClient(hub, nil)
	hub.Register <- first
	hub.Register <- second
	waitForClientCount(t, hub, 2)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop after context cancellation")
	}

	if got := hub.GetClientCount(); got != 0 {
		t.Errorf("client count after shutdown = %d, want 0", got)
	}
	for _, client := range []*Client{first, second} {
		select {
		case _, ok := <-client.send:
			if ok {
				t.Error("expected send channel to be closed after shutdown")
			}
		default:
			t.Error("send channel still open after shutdown")
		}
	}
}

// =============================================================================
// Broadcasting
// =============================================================================

func TestHubBroadcastDeliversToAllClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = hub.RunWithContext(ctx)
	}()

	first := NewClient(hub, nil)
	second := NewClient(hub, nil)
	hub.Register <- first
	hub.Register <- second
	waitForClientCount(t, hub, 2)

	hub.BroadcastJSON(MessageTypeEvent, map[string]string{"hello": "world"})

	for _, client := range []*Client{first, second} {
		select {
		case msg := <-client.send:
			if msg.Type != MessageTypeEvent {
				t.Errorf("message type = %q, want %q", msg.Type, MessageTypeEvent)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestHubEvictsSlowClient(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = hub.RunWithContext(ctx)
	}()

	slow := NewClient(hub, nil)
	healthy := NewClient(hub, nil)
	hub.Register <- slow
	hub.Register <- healthy
	waitForClientCount(t, hub, 2)

	// Fill the slow client's send buffer so the next broadcast cannot be
	// delivered to it.
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- Message{Type: MessageTypePing}
	}

	hub.BroadcastJSON(MessageTypeEvent, "payload")
	waitForClientCount(t, hub, 1)

	// The healthy client still receives the message.
	select {
	case msg := <-healthy.send:
		if msg.Type != MessageTypeEvent {
			t.Errorf("message type = %q, want %q", msg.Type, MessageTypeEvent)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client did not receive broadcast after eviction")
	}
}

func TestBroadcastEventReachesClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = hub.RunWithContext(ctx)
	}()

	client := NewClient(hub, nil)
	hub.Register <- client
	waitForClientCount(t, hub, 1)

	event := models.Event{
		Kind:      models.EventQuestJoined,
		Timestamp: time.Now().UTC(),
		Payload:   models.EventPayload{QuestID: "q-1", UserID: "u-1"},
	}
	hub.BroadcastEvent(event)

	select {
	case msg := <-client.send:
		if msg.Type != MessageTypeEvent {
			t.Errorf("message type = %q, want %q", msg.Type, MessageTypeEvent)
		}
		got, ok := msg.Data.(models.Event)
		if !ok {
			t.Fatalf("message data is %T, want models.Event", msg.Data)
		}
		if got.Kind != models.EventQuestJoined {
			t.Errorf("event kind = %q, want %q", got.Kind, models.EventQuestJoined)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("client did not receive event broadcast")
	}
}

func TestBroadcastEventDoesNotBlockWhenHubStopped(t *testing.T) {
	hub := NewHub()

	// With no hub loop draining the broadcast channel, sends beyond the
	// buffer capacity must be dropped rather than block the caller.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cap(hub.broadcast)+10; i++ {
			hub.BroadcastEvent(models.Event{Kind: models.EventUserCheckin})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastEvent blocked with a full broadcast channel")
	}
}

// =============================================================================
// Message marshaling
// =============================================================================

func TestMarshalMessage(t *testing.T) {
	msg := Message{
		Type: MessageTypeEvent,
		Data: map[string]string{"quest_id": "q-1"},
	}

	data, err := MarshalMessage(msg)
	if err != nil {
		t.Fatalf("MarshalMessage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("MarshalMessage returned empty payload")
	}
}

func TestClientIDsAreUnique(t *testing.T) {
	hub := NewHub()
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		client := NewClient(hub, nil)
		if seen[client.ID()] {
			t.Fatalf("duplicate client ID %d", client.ID())
		}
		seen[client.ID()] = true
	}
}

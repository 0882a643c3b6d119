// handlers/relay.go - Room event relay over WebSocket
package handlers

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	relayWindow      = time.Second
	relayMaxMessages = 5

	relaySendBuffer = 64
	relayWriteWait  = 10 * time.Second
)

// RelayMessage is the wire format in both directions.
type RelayMessage struct {
	Type    string      `json:"type"`
	Room    string      `json:"room,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// messageLimiter is a fixed-window counter owned by a single connection.
// The window resets on rollover; the counter dies with the connection.
type messageLimiter struct {
	count       int
	windowStart time.Time
}

func (l *messageLimiter) allow(now time.Time) bool {
	if now.Sub(l.windowStart) > relayWindow {
		l.windowStart = now
		l.count = 1
		return true
	}
	if l.count >= relayMaxMessages {
		return false
	}
	l.count++
	return true
}

type relayClient struct {
	id      string
	conn    *websocket.Conn
	send    chan RelayMessage
	rooms   map[string]bool
	limiter messageLimiter
}

func (cl *relayClient) enqueue(msg RelayMessage) {
	select {
	case cl.send <- msg:
	default:
		// Slow consumer; drop rather than block the room
	}
}

type relayHub struct {
	mu    sync.RWMutex
	rooms map[string]map[*relayClient]bool
}

var hub = &relayHub{rooms: make(map[string]map[*relayClient]bool)}

func (h *relayHub) join(cl *relayClient, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*relayClient]bool)
	}
	h.rooms[room][cl] = true
	cl.rooms[room] = true
}

func (h *relayHub) leave(cl *relayClient, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(cl.rooms, room)
	if members := h.rooms[room]; members != nil {
		delete(members, cl)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *relayHub) remove(cl *relayClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room := range cl.rooms {
		if members := h.rooms[room]; members != nil {
			delete(members, cl)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	cl.rooms = make(map[string]bool)
}

func (h *relayHub) broadcast(room string, msg RelayMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for member := range h.rooms[room] {
		member.enqueue(msg)
	}
}

// RelayUpgrade rejects plain HTTP requests to the websocket route.
func RelayUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// RelayHandler runs the per-connection event loop.
var RelayHandler = websocket.New(func(conn *websocket.Conn) {
	client := &relayClient{
		id:    uuid.New().String(),
		conn:  conn,
		send:  make(chan RelayMessage, relaySendBuffer),
		rooms: make(map[string]bool),
	}

	done := make(chan struct{})
	go relayWriter(client, done)

	defer func() {
		hub.remove(client)
		close(done)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg RelayMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			client.enqueue(RelayMessage{Type: "error", Payload: "Invalid message"})
			continue
		}

		// Every inbound event spends one slot of the window. The message is
		// rejected, not the connection.
		if !client.limiter.allow(time.Now()) {
			client.enqueue(RelayMessage{Type: "error", Payload: "Rate limit exceeded"})
			continue
		}

		dispatch(client, msg)
	}
})

func dispatch(client *relayClient, msg RelayMessage) {
	switch msg.Type {
	case "joinRoom":
		if msg.Room == "" {
			return
		}
		hub.join(client, msg.Room)
		hub.broadcast(msg.Room, RelayMessage{
			Type:    "playerJoined",
			Room:    msg.Room,
			Payload: fiber.Map{"player_id": client.id},
		})

	case "leaveRoom":
		if msg.Room == "" {
			return
		}
		hub.leave(client, msg.Room)
		hub.broadcast(msg.Room, RelayMessage{
			Type:    "playerLeft",
			Room:    msg.Room,
			Payload: fiber.Map{"player_id": client.id},
		})

	case "action":
		if msg.Room == "" {
			return
		}
		// The relay re-checks the window before fanning out and drops
		// silently when it is exhausted.
		if !client.limiter.allow(time.Now()) {
			return
		}
		hub.broadcast(msg.Room, RelayMessage{
			Type: "gameUpdate",
			Room: msg.Room,
			Payload: fiber.Map{
				"player_id": client.id,
				"action":    msg.Payload,
			},
		})

	default:
		client.enqueue(RelayMessage{Type: "error", Payload: "Unknown event type"})
	}
}

func relayWriter(client *relayClient, done <-chan struct{}) {
	for {
		select {
		case msg := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(relayWriteWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				log.Printf("relay write to %s failed: %v", client.id, err)
				return
			}
		case <-done:
			return
		}
	}
}

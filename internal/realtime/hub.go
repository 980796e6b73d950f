package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains the set of connected clients and fans domain events out to
// them. The app is single-user on one device, so there is no per-user keying;
// every client is just another open window of the same user.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

// NewHub creates an empty hub. One hub is wired at startup and injected into
// the handlers that publish events.
func NewHub() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

// Register adds a client to the broadcast set.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends a raw message to every connected client.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		// a failed send is cleaned up by the ws handler on its side
		c.Send(message)
	}
}

// Publish marshals a typed domain event and broadcasts it. Events that fail
// to encode are dropped; delivery is best-effort.
func (h *Hub) Publish(eventType string, payload map[string]any) {
	evt := map[string]any{"type": eventType, "version": 1}
	for k, v := range payload {
		evt[k] = v
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(data)
}

package hub

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Event types published for review changes.
const (
	ReviewCreated = "review.created"
	ReviewUpdated = "review.updated"
	ReviewDeleted = "review.deleted"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is a buffered channel the SSE handler reads encoded events from.
type Client chan []byte

// Hub fans review events out to subscribed clients.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// GlobalHub is the hub used by the HTTP handlers.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe registers a new client with the given buffer size.
func (h *Hub) Subscribe(buffer int) Client {
	client := make(Client, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return client
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Close disconnects every current client by closing its channel.
// It is registered as a server shutdown hook so open streams end.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client)
	}
}

// Len returns the number of subscribed clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to every subscribed client.
// Clients whose buffer is full miss the event.
func (h *Hub) Broadcast(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).WithField("type", event.Type).Error("failed to encode hub event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client <- messageBytes:
		default:
			log.WithField("type", event.Type).Warn("dropping event for slow client")
		}
	}
}

// internal/events/hub.go
package events

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Event is pushed to every connected board client.
type Event struct {
	Type   string `json:"type"`
	DealID int64  `json:"deal_id,omitempty"`
	Stage  string `json:"stage,omitempty"`
}

// Hub fans pipeline events out to websocket subscribers. Clients only
// listen; there is no inbound message protocol.
type Hub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex

	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan Event

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan Event, 256),
		logger:     logger,
	}
}

// Register adds a connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister drops a connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// PublishDealMoved broadcasts a stage change. Best effort: if the buffer is
// full the event is dropped rather than blocking the caller.
func (h *Hub) PublishDealMoved(dealID int64, stage string) {
	ev := Event{Type: "deal_moved", DealID: dealID, Stage: stage}
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("event buffer full, dropping deal_moved event", zap.Int64("deal_id", dealID))
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					h.logger.Debug("dropping slow websocket client", zap.Error(err))
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

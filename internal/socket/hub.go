package socket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the websocket connections watching the live fleet map, keyed by
// tenant user id. Safe for concurrent use.
type Hub struct {
	clients map[string][]*websocket.Conn
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string][]*websocket.Conn),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = append(h.clients[userID], conn)
	log.Printf("WebSocket client registered: user=%s", userID)
}

func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.clients[userID]
	for i, c := range conns {
		if c == conn {
			h.clients[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Broadcast sends a message to every connection of the tenant. A missing
// tenant is not an error; the dashboard may simply be closed.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.clients[userID] {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write failed: user=%s err=%v", userID, err)
		}
	}
}

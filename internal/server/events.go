package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is the message broadcast to clients after a catalog mutation.
type Event struct {
	Type string `json:"type"` // created, updated, deleted
	ID   int64  `json:"id"`
}

// eventTypes maps store-level actions to wire event names.
var eventTypes = map[string]string{
	"create": "created",
	"update": "updated",
	"delete": "deleted",
}

// Hub fans mutation events out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *Hub {
	return &Hub{clients: map[*websocket.Conn]struct{}{}}
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("events: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// The client never sends anything meaningful; the read loop exists to
	// detect disconnects.
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("events: websocket read: %v", err)
			}
			return
		}
	}
}

// Broadcast sends a mutation event to every connected client.
func (h *Hub) Broadcast(action string, movieID int64) {
	typ, ok := eventTypes[action]
	if !ok {
		typ = action
	}
	ev := Event{Type: typ, ID: movieID}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("events: websocket write: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// closeAll disconnects every client, used during shutdown.
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

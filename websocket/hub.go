package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Hub fans announcements out to every connected client. Unlike the rest of
// the system it holds in-process state, but only connection handles; the
// announcements themselves live in the database.
type Hub struct {
	clients   map[*websocket.Conn]bool
	clientsMu sync.RWMutex

	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan interface{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan interface{}, 16),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clientsMu.Lock()
			h.clients[conn] = true
			h.clientsMu.Unlock()
		case conn := <-h.unregister:
			h.clientsMu.Lock()
			delete(h.clients, conn)
			h.clientsMu.Unlock()
		case payload := <-h.broadcast:
			h.clientsMu.RLock()
			var dead []*websocket.Conn
			for conn := range h.clients {
				if err := conn.WriteJSON(payload); err != nil {
					log.Printf("Error writing to websocket client: %v", err)
					conn.Close()
					dead = append(dead, conn)
				}
			}
			h.clientsMu.RUnlock()

			if len(dead) > 0 {
				h.clientsMu.Lock()
				for _, conn := range dead {
					delete(h.clients, conn)
				}
				h.clientsMu.Unlock()
			}
		}
	}
}

// Publish queues a payload for broadcast without blocking the caller.
func (h *Hub) Publish(payload interface{}) {
	select {
	case h.broadcast <- payload:
	default:
		log.Println("⚠️ Announcement broadcast queue full, dropping message")
	}
}

// Serve keeps a subscriber connection registered until it closes. Clients
// only listen; inbound frames are drained and discarded.
func (h *Hub) Serve(conn *websocket.Conn) {
	h.register <- conn
	defer func() {
		h.unregister <- conn
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

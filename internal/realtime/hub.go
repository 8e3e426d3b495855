package realtime

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
)

const writeWait = 5 * time.Second

// BoardEvent tells open boards that something they show has changed.
type BoardEvent struct {
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entityId,omitempty"`
	Status   string    `json:"status,omitempty"`
	At       time.Time `json:"at"`
}

// Hub keeps the open kanban board connections and broadcasts board events.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub accepts connections from allowedOrigins; an empty list accepts any
// origin.
func NewHub(allowedOrigins []string) *Hub {
	allowed := map[string]bool{}
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin] || allowed["*"]
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeWS upgrades the request and holds the connection until the client
// goes away. Incoming messages are ignored.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Realtime] upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	metrics.BoardClients.Set(float64(len(h.clients)))
	h.mu.Unlock()

	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[conn] {
		delete(h.clients, conn)
		_ = conn.Close()
	}
	metrics.BoardClients.Set(float64(len(h.clients)))
}

func (h *Hub) Broadcast(ev BoardEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ev); err != nil {
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
	metrics.BoardClients.Set(float64(len(h.clients)))
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close drops every connection; used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

var boardEntities = map[string]bool{
	"agendamento":   true,
	"lead":          true,
	"kanban_column": true,
}

// Handle makes the hub an audit sink: board related events are broadcast.
func (h *Hub) Handle(_ context.Context, ev audit.Event) error {
	if !boardEntities[ev.Entity] {
		return nil
	}

	out := BoardEvent{
		Action: ev.Action,
		Entity: ev.Entity,
		At:     ev.At,
	}
	if ev.EntityID != nil {
		out.EntityID = *ev.EntityID
	}
	if m, ok := ev.Metadata.(map[string]any); ok {
		if s, ok := m["status"].(string); ok {
			out.Status = s
		}
	}

	h.Broadcast(out)
	return nil
}

var _ audit.Sink = (*Hub)(nil)

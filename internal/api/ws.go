package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AlonBenyatov/dungeonloop/internal/engine"
	"github.com/AlonBenyatov/dungeonloop/internal/logging"
)

// Hub fans battle events out to websocket subscribers. Slow or broken
// connections are dropped rather than allowed to stall the battle tick.
type Hub struct {
	mu       sync.Mutex
	subs     map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Broadcast sends the event to every subscriber. Safe to use as an
// engine.Listener.
func (h *Hub) Broadcast(ev engine.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		logging.Error("failed to marshal battle event", err, nil)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.subs, conn)
		}
	}
}

// Handle upgrades the request and keeps the connection subscribed until the
// client goes away.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, nil)
		return
	}
	h.mu.Lock()
	h.subs[conn] = struct{}{}
	h.mu.Unlock()

	// Drain reads so control frames are processed; any read error means
	// the client disconnected.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.subs, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

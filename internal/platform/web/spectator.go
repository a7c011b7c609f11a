// Package web serves a read-only spectator feed over WebSocket. Each
// connected client receives the game snapshot as JSON, one message per
// simulation tick. Spectators never send input; anything they write is
// drained and dropped.
package web

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/akovalev/fridayfall/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one connected spectator.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to all connected spectators. It implements the
// platform's SnapshotSink, so attaching it to the tick driver is the whole
// integration.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	logger     *log.Logger

	mu      sync.RWMutex
	started bool
}

// NewHub creates a spectator hub. Call Run before publishing.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 8),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "fridayfall-web",
		}),
	}
}

// Run processes registrations and broadcasts until the process exits.
// Start it on its own goroutine.
func (h *Hub) Run() {
	h.mu.Lock()
	h.started = true
	h.mu.Unlock()

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.logger.Info("spectator connected", "count", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Info("spectator disconnected", "count", len(h.clients))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer; drop it rather than stall the feed
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish implements the snapshot sink. Called from the game tick, so it
// must never block: if the hub is backed up, the frame is skipped.
func (h *Hub) Publish(snap game.Snapshot) {
	h.mu.RLock()
	started := h.started
	h.mu.RUnlock()
	if !started {
		return
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return
	}

	select {
	case h.broadcast <- b:
	default:
	}
}

// ServeWs upgrades an HTTP request to a spectator connection.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// readPump drains incoming frames so pings and closes are processed; the
// payloads are ignored because spectators have no input.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	//nolint:errcheck // Connection is going away either way
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ListenAndServe starts the hub and an HTTP server exposing the feed at
// /watch. It blocks; run it on a goroutine next to the game loop.
func (h *Hub) ListenAndServe(addr string) error {
	go h.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", h.ServeWs)

	h.logger.Info("spectator feed listening", "address", addr)
	return http.ListenAndServe(addr, mux)
}

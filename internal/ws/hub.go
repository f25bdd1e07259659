package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/inletpara/inletpara/internal/api"
)

const (
	// writeTimeout is the deadline for a single write to a client.
	writeTimeout = 10 * time.Second

	// pongWait is how long to wait for a pong response before treating the
	// connection as dead.
	pongWait = 60 * time.Second

	// pingPeriod controls how often the server sends WebSocket ping frames.
	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// sendBufSize is the per-client outgoing message buffer depth.
	sendBufSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Allow all origins — callers should apply CORS at the reverse-proxy level.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the JSON envelope sent to clients on every broadcast tick.
type Message struct {
	Event string              `json:"event"`
	Data  api.ResultsResponse `json:"data"`
}

// Hub manages WebSocket client connections and broadcasts the computed
// results for the current session to all connected clients every interval.
type Hub struct {
	build    func() api.ResultsResponse
	interval time.Duration

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// client represents one connected WebSocket client.
//
// send is written by whichever goroutine is broadcasting and closed exactly
// once on disconnect; both paths go through trySend/closeSend so a send can
// never race the close.
type client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

// trySend queues msg for the client without blocking. Returns false when the
// client is already closed or its buffer is full.
func (c *client) trySend(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel exactly once. Safe to call concurrently
// with trySend and with itself.
func (c *client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// New creates a Hub that broadcasts the payload returned by build every
// interval.
func New(build func() api.ResultsResponse, interval time.Duration) *Hub {
	return &Hub{
		build:    build,
		interval: interval,
		clients:  make(map[*client]struct{}),
	}
}

// Run starts the broadcast ticker loop. It sends the current results to all
// connected clients every interval. Run blocks until ctx is cancelled, then
// closes all active connections.
func (h *Hub) Run(ctx context.Context) {
	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-t.C:
			h.Broadcast()
		}
	}
}

// ServeHTTP upgrades the HTTP connection to WebSocket and serves the client.
// It sends the current results immediately on connect, then continues to
// receive broadcasts from the ticker loop. Blocks until the connection closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already written the error response.
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufSize),
	}
	h.register(c)
	defer h.unregister(c)

	// Send the current results immediately so the UI has data right away.
	if data, err := h.buildMessage(); err == nil {
		c.trySend(data)
	}

	go c.writePump()
	c.readPump() // blocks until connection closes
}

// Broadcast pushes the current results to every connected client. The server
// also calls this directly after a config reload so clients see new inlet
// collections without waiting for the next tick.
func (h *Hub) Broadcast() {
	data, err := h.buildMessage()
	if err != nil {
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.trySend(data) {
			// Client's outgoing buffer is full (or it already closed) —
			// disconnect it.
			h.unregister(c)
		}
	}
}

// Count returns the number of currently connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// --- internal ---------------------------------------------------------------

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.closeSend()
}

func (h *Hub) buildMessage() ([]byte, error) {
	msg := Message{
		Event: "results",
		Data:  h.build(),
	}
	return json.Marshal(msg)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
		delete(h.clients, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		c.closeSend()
	}
}

// writePump drains the client's send channel and forwards messages to the
// WebSocket connection. It also sends periodic ping frames. Runs in its own
// goroutine per client.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				// Channel was closed (hub is shutting down or client removed).
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump reads frames from the connection to process control messages (pong,
// close) and detect disconnects. Blocks until the connection closes.
func (c *client) readPump() {
	defer c.conn.Close()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

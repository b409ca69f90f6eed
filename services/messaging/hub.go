package messaging

import (
	"encoding/json"
	"sync"

	"brandconnect/models"
	"brandconnect/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub tracks the WebSocket connections of signed-in accounts on this
// instance and pushes chat events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*wsClient // accountID -> connection
}

type wsClient struct {
	accountID string
	conn      *websocket.Conn
	send      chan []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*wsClient)}
}

// Attach registers a connection for an account and starts its write
// pump. An existing connection for the same account is replaced.
func (h *Hub) Attach(accountID string, conn *websocket.Conn) {
	client := &wsClient{accountID: accountID, conn: conn, send: make(chan []byte, 16)}

	h.mu.Lock()
	if old, ok := h.clients[accountID]; ok {
		close(old.send)
	}
	h.clients[accountID] = client
	h.mu.Unlock()

	go client.writePump()
	go h.readPump(client)
}

func (h *Hub) detach(client *wsClient) {
	h.mu.Lock()
	if h.clients[client.accountID] == client {
		delete(h.clients, client.accountID)
		close(client.send)
	}
	h.mu.Unlock()
	client.conn.Close()
}

// readPump drains the connection so pings and closes are processed;
// inbound chat goes through the HTTP API, not the socket.
func (h *Hub) readPump(client *wsClient) {
	defer h.detach(client)
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// Deliver pushes an event to the recipient if they are connected here.
// Absent or slow recipients are skipped; history lives in the store.
func (h *Hub) Deliver(event models.ChatEvent) {
	h.mu.RLock()
	client, ok := h.clients[event.RecipientID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		utils.GetLogger().Warn("failed to marshal chat event", zap.Error(err))
		return
	}
	select {
	case client.send <- payload:
	default:
		utils.GetLogger().Debug("chat client send buffer full, dropping event",
			zap.String("accountId", event.RecipientID))
	}
}

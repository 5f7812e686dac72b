// Package gateway provides the WebSocket endpoint agents hold open
// while working the inbox. Connections join rooms (organization, user,
// and per-conversation) and receive the event envelopes the realtime
// layer publishes into those rooms.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/events"
)

// Identity is the authenticated principal behind a connection, resolved
// by the HTTP layer before the upgrade.
type Identity struct {
	AgentID        string
	OrganizationID string
}

// Lifecycle receives connect/disconnect callbacks. The session tracker
// implements it: it records presence, and on disconnect releases the
// agent's conversations so they return to the pending pool.
type Lifecycle interface {
	Connected(ctx context.Context, connID string, id Identity)
	Disconnected(ctx context.Context, connID string, id Identity)
	StatusChanged(ctx context.Context, connID string, id Identity, status string)
}

// Authorizer checks that an agent may join a conversation room.
type Authorizer interface {
	CanJoinConversation(ctx context.Context, orgID, conversationID string) error
}

// TypingPublisher publishes typing indicators originated by clients.
type TypingPublisher interface {
	Typing(ctx context.Context, conversationID, agentID string, typing bool)
}

// Hub manages WebSocket connections and room membership for one
// replica. It implements events.Sink so the publisher and bridge can
// deliver into rooms directly.
type Hub struct {
	config     *config.GatewayConfig
	lifecycle  Lifecycle
	authorizer Authorizer
	typing     TypingPublisher

	// Active connections: connection_id -> *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Room membership: room -> set of connection_ids
	rooms  map[string]map[string]bool
	roomMu sync.RWMutex
}

// Connection represents a single WebSocket client.
//
// rooms is accessed without a lock. All reads and writes happen on the
// goroutine that owns this connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID       string
	Identity Identity
	Conn     *websocket.Conn
	rooms    map[string]bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewHub creates a new Hub. lifecycle, authorizer, and typing may be
// nil in tests.
func NewHub(cfg *config.GatewayConfig, lifecycle Lifecycle, authorizer Authorizer, typing TypingPublisher) *Hub {
	return &Hub{
		config:      cfg,
		lifecycle:   lifecycle,
		authorizer:  authorizer,
		typing:      typing,
		connections: make(map[string]*Connection),
		rooms:       make(map[string]map[string]bool),
	}
}

// SetLifecycle wires the session tracker in after construction. The
// tracker publishes through the event layer, which in turn delivers
// into this hub, so the two cannot be built in one pass.
func (h *Hub) SetLifecycle(l Lifecycle) {
	h.lifecycle = l
}

// SetAuthorizer wires the join authorizer in after construction.
func (h *Hub) SetAuthorizer(a Authorizer) {
	h.authorizer = a
}

// SetTyping wires the typing publisher in after construction.
func (h *Hub) SetTyping(tp TypingPublisher) {
	h.typing = tp
}

// HandleConnection manages the lifecycle of a single WebSocket
// connection. Called by the HTTP handler after upgrade; blocks until
// the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn, id Identity) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:       connID,
		Identity: id,
		Conn:     conn,
		rooms:    make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}

	h.register(c)
	defer h.unregister(c)

	// Every agent listens to their organization and their own room.
	h.join(c, events.OrgRoom(id.OrganizationID))
	h.join(c, events.UserRoom(id.AgentID))

	if h.lifecycle != nil {
		h.lifecycle.Connected(ctx, connID, id)
		// Disconnect cleanup must run even when ctx is already gone.
		defer h.lifecycle.Disconnected(context.WithoutCancel(ctx), connID, id)
	}

	h.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg events.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}
		h.handleClientMessage(ctx, c, &msg)
	}
}

// Deliver sends an event to every connection in the room. Implements
// events.Sink.
func (h *Hub) Deliver(room string, data []byte) {
	h.roomMu.RLock()
	members, exists := h.rooms[room]
	if !exists {
		h.roomMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	h.roomMu.RUnlock()

	// Snapshot connection pointers, then release the lock before the
	// potentially slow writes.
	h.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := h.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := h.sendRaw(c, data); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", c.ID, "room", room, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// memberCount returns the number of members in a room.
// Unexported; used by tests to poll instead of sleeping.
func (h *Hub) memberCount(room string) int {
	h.roomMu.RLock()
	defer h.roomMu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) handleClientMessage(ctx context.Context, c *Connection, msg *events.ClientMessage) {
	switch msg.Action {
	case "join:conversation":
		if msg.ConversationID == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "conversation_id is required for join"})
			return
		}
		if h.authorizer != nil {
			if err := h.authorizer.CanJoinConversation(ctx, c.Identity.OrganizationID, msg.ConversationID); err != nil {
				h.sendJSON(c, map[string]string{
					"type":            "join.error",
					"conversation_id": msg.ConversationID,
					"message":         "conversation not accessible",
				})
				return
			}
		}
		h.join(c, events.ConversationRoom(msg.ConversationID))
		h.sendJSON(c, map[string]string{
			"type":            "join.confirmed",
			"conversation_id": msg.ConversationID,
		})

	case "leave:conversation":
		if msg.ConversationID == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "conversation_id is required for leave"})
			return
		}
		h.leave(c, events.ConversationRoom(msg.ConversationID))

	case "typing:start", "typing:stop":
		if msg.ConversationID == "" || h.typing == nil {
			return
		}
		// Only forward typing for rooms the client actually joined.
		if !c.rooms[events.ConversationRoom(msg.ConversationID)] {
			return
		}
		h.typing.Typing(ctx, msg.ConversationID, c.Identity.AgentID, msg.Action == "typing:start")

	case "set:status":
		if msg.Status != "online" && msg.Status != "away" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "status must be online or away"})
			return
		}
		if h.lifecycle != nil {
			h.lifecycle.StatusChanged(ctx, c.ID, c.Identity, msg.Status)
		}

	case "ping":
		h.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// join adds the connection to a room.
func (h *Hub) join(c *Connection, room string) {
	h.roomMu.Lock()
	if _, exists := h.rooms[room]; !exists {
		h.rooms[room] = make(map[string]bool)
	}
	h.rooms[room][c.ID] = true
	h.roomMu.Unlock()

	c.rooms[room] = true
}

// leave removes the connection from a room.
func (h *Hub) leave(c *Connection, room string) {
	h.roomMu.Lock()
	if members, exists := h.rooms[room]; exists {
		delete(members, c.ID)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.roomMu.Unlock()

	delete(c.rooms, room)
}

// register adds a connection to the tracking map.
func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.ID] = c
}

// unregister removes a connection and all its room memberships.
func (h *Hub) unregister(c *Connection) {
	for room := range c.rooms {
		h.leave(c, room)
	}

	h.mu.Lock()
	delete(h.connections, c.ID)
	h.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (h *Hub) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := h.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (h *Hub) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout())
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}

func (h *Hub) writeTimeout() time.Duration {
	if h.config != nil && h.config.WriteTimeout > 0 {
		return h.config.WriteTimeout
	}
	return 10 * time.Second
}

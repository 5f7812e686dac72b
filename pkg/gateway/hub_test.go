package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowAll authorizes every join.
type allowAll struct{}

func (allowAll) CanJoinConversation(context.Context, string, string) error { return nil }

// denyAll rejects every join.
type denyAll struct{}

func (denyAll) CanJoinConversation(context.Context, string, string) error {
	return errors.New("nope")
}

// typingRecorder captures typing calls.
type typingRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *typingRecorder) Typing(_ context.Context, conversationID, agentID string, typing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, conversationID+":"+agentID)
}

func (r *typingRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

func setupTestHub(t *testing.T, authorizer Authorizer, typing TypingPublisher) (*Hub, *httptest.Server) {
	t.Helper()

	cfg := config.DefaultGatewayConfig()
	hub := NewHub(&cfg, nil, authorizer, typing)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		hub.HandleConnection(r.Context(), conn, Identity{
			AgentID:        "agent-1",
			OrganizationID: "org-1",
		})
	}))

	t.Cleanup(func() { server.Close() })
	return hub, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestHub_ConnectionEstablished(t *testing.T) {
	hub, server := setupTestHub(t, allowAll{}, nil)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])

	// Connect puts the agent in their org and user rooms.
	require.Eventually(t, func() bool {
		return hub.memberCount(events.OrgRoom("org-1")) == 1 &&
			hub.memberCount(events.UserRoom("agent-1")) == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHub_DeliverToRoom(t *testing.T) {
	hub, server := setupTestHub(t, allowAll{}, nil)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	require.Eventually(t, func() bool {
		return hub.memberCount(events.OrgRoom("org-1")) == 1
	}, 5*time.Second, 10*time.Millisecond)

	hub.Deliver(events.OrgRoom("org-1"), []byte(`{"type":"conversation.new"}`))

	msg := readJSON(t, conn)
	assert.Equal(t, "conversation.new", msg["type"])

	// Delivery to an empty room is a no-op, not a panic.
	hub.Deliver(events.ConversationRoom("nobody"), []byte(`{}`))
}

func TestHub_JoinAndLeaveConversation(t *testing.T) {
	hub, server := setupTestHub(t, allowAll{}, nil)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, events.ClientMessage{Action: "join:conversation", ConversationID: "conv-1"})
	msg := readJSON(t, conn)
	assert.Equal(t, "join.confirmed", msg["type"])
	assert.Equal(t, "conv-1", msg["conversation_id"])

	room := events.ConversationRoom("conv-1")
	assert.Equal(t, 1, hub.memberCount(room))

	hub.Deliver(room, []byte(`{"type":"message.new"}`))
	msg = readJSON(t, conn)
	assert.Equal(t, "message.new", msg["type"])

	writeJSON(t, conn, events.ClientMessage{Action: "leave:conversation", ConversationID: "conv-1"})
	require.Eventually(t, func() bool {
		return hub.memberCount(room) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHub_JoinDenied(t *testing.T) {
	hub, server := setupTestHub(t, denyAll{}, nil)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, events.ClientMessage{Action: "join:conversation", ConversationID: "conv-1"})
	msg := readJSON(t, conn)
	assert.Equal(t, "join.error", msg["type"])
	assert.Equal(t, 0, hub.memberCount(events.ConversationRoom("conv-1")))
}

func TestHub_TypingRequiresJoin(t *testing.T) {
	typing := &typingRecorder{}
	_, server := setupTestHub(t, allowAll{}, typing)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	// Typing before joining is ignored.
	writeJSON(t, conn, events.ClientMessage{Action: "typing:start", ConversationID: "conv-1"})
	writeJSON(t, conn, events.ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
	assert.Empty(t, typing.Calls())

	writeJSON(t, conn, events.ClientMessage{Action: "join:conversation", ConversationID: "conv-1"})
	readJSON(t, conn) // join.confirmed
	writeJSON(t, conn, events.ClientMessage{Action: "typing:start", ConversationID: "conv-1"})

	require.Eventually(t, func() bool {
		return len(typing.Calls()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "conv-1:agent-1", typing.Calls()[0])
}

func TestHub_DisconnectCleansRooms(t *testing.T) {
	hub, server := setupTestHub(t, allowAll{}, nil)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 0 &&
			hub.memberCount(events.OrgRoom("org-1")) == 0
	}, 5*time.Second, 10*time.Millisecond)
}

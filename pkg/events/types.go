// Package events provides real-time event delivery via WebSocket rooms
// and Redis pub/sub for cross-replica distribution.
//
// Every state change is published twice: once to the local gateway hub
// (for sockets connected to this replica) and once to the shared Redis
// channel. The bridge on each replica re-delivers foreign-origin
// envelopes locally, so a socket sees every event exactly once no
// matter which replica produced it.
package events

import "encoding/json"

// Event types delivered to dashboard clients.
const (
	EventTypeConversationNew       = "conversation.new"
	EventTypeConversationUpdated   = "conversation.updated"
	EventTypeConversationAssigned  = "conversation.assigned"
	EventTypeConversationReleased  = "conversation.released"
	EventTypeConversationCompleted = "conversation.completed"

	EventTypeMessageNew     = "message.new"
	EventTypeMessageUpdated = "message.updated"

	EventTypeAgentStatusChanged = "agent.status_changed"
	EventTypeAgentTyping        = "agent.typing"
)

// OrgRoom returns the room every agent of an organization joins on
// connect. Format: "org:{org_id}"
func OrgRoom(orgID string) string {
	return "org:" + orgID
}

// UserRoom returns the per-agent room for directed delivery.
// Format: "user:{user_id}"
func UserRoom(userID string) string {
	return "user:" + userID
}

// ConversationRoom returns the room agents join while viewing a
// conversation. Format: "conv:{conversation_id}"
func ConversationRoom(conversationID string) string {
	return "conv:" + conversationID
}

// Envelope is the wire form of one event, both on the Redis channel and
// down the WebSocket. Origin carries the producing replica's instance
// id so the bridge can skip envelopes it already delivered locally.
type Envelope struct {
	Type      string          `json:"type"`
	Room      string          `json:"room"`
	Payload   json.RawMessage `json:"payload"`
	Origin    string          `json:"origin,omitempty"`
	Timestamp string          `json:"timestamp"` // RFC3339Nano
}

// ClientMessage is the JSON structure for client to server WebSocket
// messages. Typing state is carried by the action itself
// (typing:start / typing:stop).
type ClientMessage struct {
	Action         string `json:"action"` // "join:conversation", "leave:conversation", "typing:start", "typing:stop", "set:status", "ping"
	ConversationID string `json:"conversation_id,omitempty"`
	Status         string `json:"status,omitempty"` // for set:status: online, away
}

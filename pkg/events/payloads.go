package events

import (
	"time"

	"github.com/omniboxhq/omnibox/ent"
)

// ConversationPayload is the payload for conversation.* events.
type ConversationPayload struct {
	ConversationID  string  `json:"conversation_id"`
	OrganizationID  string  `json:"organization_id"`
	ChannelID       string  `json:"channel_id"`
	ContactID       string  `json:"contact_id"`
	Status          string  `json:"status"`
	AssignedAgentID *string `json:"assigned_agent_id,omitempty"`
	LastMessageAt   *string `json:"last_message_at,omitempty"` // RFC3339Nano
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// NewConversationPayload maps a conversation row to its event payload.
func NewConversationPayload(conv *ent.Conversation) ConversationPayload {
	p := ConversationPayload{
		ConversationID:  conv.ID,
		OrganizationID:  conv.OrganizationID,
		ChannelID:       conv.ChannelID,
		ContactID:       conv.ContactID,
		Status:          string(conv.Status),
		AssignedAgentID: conv.AssignedAgentID,
		CreatedAt:       conv.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       conv.UpdatedAt.Format(time.RFC3339Nano),
	}
	if conv.LastMessageAt != nil {
		ts := conv.LastMessageAt.Format(time.RFC3339Nano)
		p.LastMessageAt = &ts
	}
	return p
}

// MessagePayload is the payload for message.* events.
type MessagePayload struct {
	MessageID      string  `json:"message_id"`
	ConversationID string  `json:"conversation_id"`
	Direction      string  `json:"direction"`
	AgentID        *string `json:"agent_id,omitempty"`
	Body           *string `json:"body,omitempty"`
	MediaRef       *string `json:"media_ref,omitempty"`
	MediaType      *string `json:"media_type,omitempty"`
	Status         string  `json:"status"`
	ErrorCode      *string `json:"error_code,omitempty"`
	ErrorMessage   *string `json:"error_message,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// NewMessagePayload maps a message row to its event payload.
func NewMessagePayload(msg *ent.Message) MessagePayload {
	return MessagePayload{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		Direction:      string(msg.Direction),
		AgentID:        msg.AgentID,
		Body:           msg.Body,
		MediaRef:       msg.MediaRef,
		MediaType:      msg.MediaType,
		Status:         string(msg.Status),
		ErrorCode:      msg.ErrorCode,
		ErrorMessage:   msg.ErrorMessage,
		CreatedAt:      msg.CreatedAt.Format(time.RFC3339Nano),
	}
}

// AgentStatusPayload is the payload for agent.status_changed events.
type AgentStatusPayload struct {
	AgentID string `json:"agent_id"`
	Status  string `json:"status"` // online, away, offline
}

// TypingPayload is the payload for agent.typing events.
type TypingPayload struct {
	ConversationID string `json:"conversation_id"`
	AgentID        string `json:"agent_id"`
	Typing         bool   `json:"typing"`
}

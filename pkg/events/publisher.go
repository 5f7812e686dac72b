package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/pkg/coord"
)

// Sink receives events for sockets connected to this replica. The
// gateway hub implements it.
type Sink interface {
	Deliver(room string, data []byte)
}

// Publisher fans events out to the local sink and mirrors every
// envelope onto the shared Redis channel for the other replicas.
// Publishing is best-effort: failures are logged, never returned, so a
// realtime hiccup cannot fail the state change that produced the event.
type Publisher struct {
	coord      *coord.Client
	sink       Sink
	instanceID string
}

// NewPublisher creates a Publisher. sink may be nil when the replica
// runs without a gateway (worker-only deployments).
func NewPublisher(coordClient *coord.Client, sink Sink, instanceID string) *Publisher {
	return &Publisher{coord: coordClient, sink: sink, instanceID: instanceID}
}

// publish wraps the payload in an envelope, delivers it locally, and
// mirrors it to the shared channel.
func (p *Publisher) publish(ctx context.Context, eventType, room string, payload interface{}) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal event payload", "type", eventType, "error", err)
		return
	}
	env := Envelope{
		Type:      eventType,
		Room:      room,
		Payload:   payloadJSON,
		Origin:    p.instanceID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(env)
	if err != nil {
		slog.Error("Failed to marshal event envelope", "type", eventType, "error", err)
		return
	}

	if p.sink != nil {
		p.sink.Deliver(room, data)
	}
	if err := p.coord.PublishEvent(ctx, data); err != nil {
		slog.Warn("Failed to mirror event to shared channel",
			"type", eventType, "room", room, "error", err)
	}
}

// ConversationNew announces a newly created conversation to the
// organization.
func (p *Publisher) ConversationNew(ctx context.Context, conv *ent.Conversation) {
	p.publish(ctx, EventTypeConversationNew, OrgRoom(conv.OrganizationID), NewConversationPayload(conv))
}

// ConversationUpdated announces any conversation change to the
// organization.
func (p *Publisher) ConversationUpdated(ctx context.Context, conv *ent.Conversation) {
	p.publish(ctx, EventTypeConversationUpdated, OrgRoom(conv.OrganizationID), NewConversationPayload(conv))
}

// ConversationAssigned announces an accepted conversation.
func (p *Publisher) ConversationAssigned(ctx context.Context, conv *ent.Conversation) {
	p.publish(ctx, EventTypeConversationAssigned, OrgRoom(conv.OrganizationID), NewConversationPayload(conv))
}

// ConversationReleased announces a conversation returned to the pool.
func (p *Publisher) ConversationReleased(ctx context.Context, conv *ent.Conversation) {
	p.publish(ctx, EventTypeConversationReleased, OrgRoom(conv.OrganizationID), NewConversationPayload(conv))
}

// ConversationCompleted announces a closed conversation.
func (p *Publisher) ConversationCompleted(ctx context.Context, conv *ent.Conversation) {
	p.publish(ctx, EventTypeConversationCompleted, OrgRoom(conv.OrganizationID), NewConversationPayload(conv))
}

// MessageNew announces a new message to the conversation room and to
// the organization (for list previews).
func (p *Publisher) MessageNew(ctx context.Context, orgID string, msg *ent.Message) {
	payload := NewMessagePayload(msg)
	p.publish(ctx, EventTypeMessageNew, ConversationRoom(msg.ConversationID), payload)
	p.publish(ctx, EventTypeMessageNew, OrgRoom(orgID), payload)
}

// MessageUpdated announces a message status change to the conversation
// room.
func (p *Publisher) MessageUpdated(ctx context.Context, msg *ent.Message) {
	p.publish(ctx, EventTypeMessageUpdated, ConversationRoom(msg.ConversationID), NewMessagePayload(msg))
}

// AgentStatusChanged announces agent presence to the organization.
func (p *Publisher) AgentStatusChanged(ctx context.Context, orgID, agentID, status string) {
	p.publish(ctx, EventTypeAgentStatusChanged, OrgRoom(orgID), AgentStatusPayload{
		AgentID: agentID,
		Status:  status,
	})
}

// Typing announces a typing indicator to the conversation room.
func (p *Publisher) Typing(ctx context.Context, conversationID, agentID string, typing bool) {
	p.publish(ctx, EventTypeAgentTyping, ConversationRoom(conversationID), TypingPayload{
		ConversationID: conversationID,
		AgentID:        agentID,
		Typing:         typing,
	})
}

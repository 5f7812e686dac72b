package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
)

// Audit trail event types appended to conversation_events.
const (
	EventCreated           = "created"
	EventReopened          = "reopened"
	EventAccepted          = "accepted"
	EventReleased          = "released"
	EventCompleted         = "completed"
	EventAgentDisconnected = "agent_disconnected"
	EventMessageReceived   = "message_received"
	EventMessageSent       = "message_sent"
	EventMessageDelivered  = "message_delivered"
	EventMessageRead       = "message_read"
	EventMessageFailed     = "message_failed"
)

// appendEvent writes one audit trail row inside the caller's transaction.
func appendEvent(ctx context.Context, tx *ent.Tx, conversationID, eventType, actorID string, metadata map[string]interface{}) error {
	create := tx.ConversationEvent.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetEventType(eventType).
		SetCreatedAt(time.Now())
	if actorID != "" {
		create = create.SetActorID(actorID)
	}
	if metadata != nil {
		create = create.SetMetadata(metadata)
	}
	return create.Exec(ctx)
}

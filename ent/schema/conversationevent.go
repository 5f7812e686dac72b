package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationEvent holds the schema definition for the ConversationEvent
// entity, the append-only audit trail of a conversation.
type ConversationEvent struct {
	ent.Schema
}

// Fields of the ConversationEvent.
func (ConversationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("conversation_id"),
		field.String("event_type"),
		field.String("actor_id").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ConversationEvent.
func (ConversationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}

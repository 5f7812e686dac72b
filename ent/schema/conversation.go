package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
//
// Invariants enforced by the service layer:
//   - status == assigned exactly when assigned_agent_id is set
//   - at most one conversation per (organization, channel, contact) is
//     pending or assigned at any time
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("organization_id"),
		field.String("channel_id"),
		field.String("contact_id"),
		field.Enum("status").
			Values("pending", "assigned", "completed").
			Default("pending"),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.Time("last_message_at").
			Optional().
			Nillable(),
		field.Time("first_response_at").
			Optional().
			Nillable().
			Comment("First outbound reply; never reset on reopen"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status"),
		index.Fields("organization_id", "channel_id", "contact_id"),
		index.Fields("assigned_agent_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
//
// Inbound messages are created delivered; outbound messages start pending
// and advance monotonically through sent, delivered and read, with
// failed as an absorbing terminal for pending and sent.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id"),
		field.Enum("direction").
			Values("inbound", "outbound"),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Sender, outbound only"),
		field.Text("body").
			Optional().
			Nillable(),
		field.String("media_ref").
			Optional().
			Nillable().
			Comment("Provider-side media reference; download is a separate concern"),
		field.String("media_type").
			Optional().
			Nillable(),
		field.String("provider_message_id").
			Optional().
			Nillable().
			Unique().
			Comment("Idempotency key for webhook deliveries and status callbacks"),
		field.Enum("status").
			Values("pending", "sent", "delivered", "read", "failed"),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}

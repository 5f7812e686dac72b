package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Channel holds the schema definition for the Channel entity.
// A channel is one configured connection to an external messaging
// provider (a WhatsApp phone number or a Messenger page).
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("organization_id"),
		field.Enum("provider").
			Values("whatsapp", "messenger"),
		field.String("name"),
		field.JSON("config", map[string]interface{}{}).
			Comment("Provider-specific settings: phone_number_id/page_id, access_token, api_version"),
		field.String("webhook_secret").
			Comment("Verify-token for the provider's GET handshake"),
		field.String("app_secret").
			Optional().
			Nillable().
			Comment("HMAC key for webhook signature verification; falls back to the provider-wide secret"),
		field.Enum("status").
			Values("active", "inactive", "error").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("organization_id", "provider"),
	}
}

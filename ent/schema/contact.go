package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("contact_id").
			Unique().
			Immutable(),
		field.String("organization_id"),
		field.Enum("provider").
			Values("whatsapp", "messenger"),
		field.String("provider_id").
			Comment("The provider's addressing identifier: phone number or PSID"),
		field.String("display_name").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "provider", "provider_id").
			Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Organization holds the schema definition for the Organization entity.
type Organization struct {
	ent.Schema
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("organization_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("slug").
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

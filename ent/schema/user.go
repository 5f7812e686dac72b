package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// User CRUD lives outside this service; the entity exists so conversation
// queries can join the assigned agent and the auth middleware can resolve
// tokens to a user.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("organization_id"),
		field.String("email").
			Unique(),
		field.String("display_name"),
		field.Enum("role").
			Values("agent", "admin").
			Default("agent"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
	}
}

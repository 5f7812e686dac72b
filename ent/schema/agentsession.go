package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One row per live socket; an agent may hold several across devices.
// Rows are owned by the instance that accepted the socket and reaped
// on that instance's startup after a crash.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.String("organization_id"),
		field.String("connection_id").
			Unique(),
		field.Enum("status").
			Values("online", "away", "offline").
			Default("online"),
		field.String("instance_id").
			Comment("For multi-replica session reaping"),
		field.Time("connected_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("instance_id"),
	}
}

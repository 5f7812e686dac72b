package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity. Jobs are the durable
// rows backing the webhook and outbound worker queues. Workers claim pending
// rows with FOR UPDATE SKIP LOCKED; retries push run_at forward with
// exponential backoff; exhausted or terminally-rejected jobs stay in
// status=failed as the dead-letter bucket.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("queue").
			Values("webhook", "outbound"),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_at").
			Default(time.Now),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Instance that is processing the job; used for crash requeue"),
		field.String("last_error").
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

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "run_at"),
		index.Fields("claimed_by"),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "connection_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "away", "offline"}, Default: "online"},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "connected_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[1]},
			},
			{
				Name:    "agentsession_instance_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[5]},
			},
		},
	}
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"whatsapp", "messenger"}},
		{Name: "name", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON},
		{Name: "webhook_secret", Type: field.TypeString},
		{Name: "app_secret", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "error"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "channel_organization_id",
				Unique:  false,
				Columns: []*schema.Column{ChannelsColumns[1]},
			},
			{
				Name:    "channel_organization_id_provider",
				Unique:  false,
				Columns: []*schema.Column{ChannelsColumns[1], ChannelsColumns[2]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "contact_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"whatsapp", "messenger"}},
		{Name: "provider_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_organization_id_provider_provider_id",
				Unique:  true,
				Columns: []*schema.Column{ContactsColumns[1], ContactsColumns[2], ContactsColumns[3]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString},
		{Name: "contact_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "completed"}, Default: "pending"},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_response_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_organization_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[4]},
			},
			{
				Name:    "conversation_organization_id_channel_id_contact_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[2], ConversationsColumns[3]},
			},
			{
				Name:    "conversation_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[5]},
			},
		},
	}
	// ConversationEventsColumns holds the columns for the "conversation_events" table.
	ConversationEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConversationEventsTable holds the schema information for the "conversation_events" table.
	ConversationEventsTable = &schema.Table{
		Name:       "conversation_events",
		Columns:    ConversationEventsColumns,
		PrimaryKey: []*schema.Column{ConversationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationevent_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationEventsColumns[1], ConversationEventsColumns[5]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeEnum, Enums: []string{"webhook", "outbound"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_at", Type: field.TypeTime},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_queue_status_run_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3], JobsColumns[6]},
			},
			{
				Name:    "job_claimed_by",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound"}},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "media_ref", Type: field.TypeString, Nullable: true},
		{Name: "media_type", Type: field.TypeString, Nullable: true},
		{Name: "provider_message_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "delivered", "read", "failed"}},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[11]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "organization_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"agent", "admin"}, Default: "agent"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_organization_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		ChannelsTable,
		ContactsTable,
		ConversationsTable,
		ConversationEventsTable,
		JobsTable,
		MessagesTable,
		OrganizationsTable,
		UsersTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// Channel is the predicate function for channel builders.
type Channel func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// ConversationEvent is the predicate function for conversationevent builders.
type ConversationEvent func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

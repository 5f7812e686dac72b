// Package models contains request/response models and business domain types.
package models

import "github.com/omniboxhq/omnibox/ent"

// ListConversationsRequest carries the filters for the conversation list.
type ListConversationsRequest struct {
	OrganizationID  string
	Status          string // optional: pending, assigned, completed
	AssignedAgentID string // optional
	ChannelID       string // optional
	Search          string // matches contact display name or provider id
	Page            int    // 1-based
	Limit           int
}

// ConversationWithRelations bundles a conversation with the rows the
// dashboard renders alongside it.
type ConversationWithRelations struct {
	*ent.Conversation
	Contact       *ent.Contact `json:"contact,omitempty"`
	Channel       *ent.Channel `json:"channel,omitempty"`
	AssignedAgent *ent.User    `json:"assignedAgent,omitempty"`
	LastMessage   *ent.Message `json:"lastMessage,omitempty"`
}

// ConversationPage is one page of the conversation list.
type ConversationPage struct {
	Conversations []*ConversationWithRelations `json:"conversations"`
	Page          int                          `json:"page"`
	Limit         int                          `json:"limit"`
	Total         int                          `json:"total"`
}

package models

import "github.com/omniboxhq/omnibox/ent"

// SendMessageRequest contains fields for sending an outbound message.
type SendMessageRequest struct {
	Body      string `json:"body"`
	MediaRef  string `json:"mediaRef,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
}

// ListMessagesRequest carries cursor pagination for conversation history.
type ListMessagesRequest struct {
	ConversationID string
	Limit          int
	Cursor         string
}

// MessagePage is one page of conversation history, newest first.
// NextCursor is null once the history is exhausted.
type MessagePage struct {
	Data       []*ent.Message `json:"data"`
	NextCursor *string        `json:"nextCursor"`
}

package services

import (
	"context"

	"github.com/omniboxhq/omnibox/ent"
)

// EventPublisher fans conversation and message changes out to the
// realtime layer. Implementations must not block the caller; publish
// failures are logged, never propagated into the state change.
type EventPublisher interface {
	ConversationNew(ctx context.Context, conv *ent.Conversation)
	ConversationUpdated(ctx context.Context, conv *ent.Conversation)
	ConversationAssigned(ctx context.Context, conv *ent.Conversation)
	ConversationReleased(ctx context.Context, conv *ent.Conversation)
	ConversationCompleted(ctx context.Context, conv *ent.Conversation)
	MessageNew(ctx context.Context, orgID string, msg *ent.Message)
	MessageUpdated(ctx context.Context, msg *ent.Message)
}

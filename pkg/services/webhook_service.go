package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/channel"
	"github.com/omniboxhq/omnibox/ent/contact"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/pkg/provider"
)

// WebhookService turns normalized provider events into contact,
// conversation, and message state. It runs inside queue workers, so
// every error it returns feeds the job retry policy: validation and
// conflict errors are terminal, everything else retries.
type WebhookService struct {
	client   *ent.Client
	adapters map[provider.Kind]provider.Adapter
	messages *MessageService
	events   EventPublisher
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client, adapters map[provider.Kind]provider.Adapter, messages *MessageService, events EventPublisher) *WebhookService {
	return &WebhookService{
		client:   client,
		adapters: adapters,
		messages: messages,
		events:   events,
	}
}

// ProcessPayload parses one webhook delivery and applies every event it
// carries. Individual event failures abort the job so the retry covers
// the whole delivery; already-applied events are idempotent on replay.
func (s *WebhookService) ProcessPayload(ctx context.Context, channelID string, rawPayload []byte) error {
	ch, err := s.client.Channel.Query().
		Where(channel.IDEQ(channelID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: channel %s", ErrNotFound, channelID)
		}
		return fmt.Errorf("failed to load channel: %w", err)
	}

	adapter, ok := s.adapters[provider.Kind(ch.Provider)]
	if !ok {
		return NewValidationError("provider", "no adapter for provider "+string(ch.Provider))
	}

	events, err := adapter.ParseWebhook(rawPayload)
	if err != nil {
		return NewValidationError("payload", err.Error())
	}

	for _, ev := range events {
		switch {
		case ev.Message != nil:
			if err := s.processInbound(ctx, ch, ev.Message); err != nil {
				return err
			}
		case ev.Status != nil:
			if err := s.processStatus(ctx, ch, ev.Status); err != nil {
				return err
			}
		}
	}
	return nil
}

// processInbound applies one inbound message: contact upsert,
// conversation dispatch (create or reopen), message append, fan-out.
func (s *WebhookService) processInbound(ctx context.Context, ch *ent.Channel, in *provider.InboundMessage) error {
	ct, err := s.upsertContact(ctx, ch, in)
	if err != nil {
		return err
	}

	conv, created, err := s.dispatchConversation(ctx, ch, ct, in)
	if err != nil {
		return err
	}
	if conv == nil {
		// Duplicate delivery; the message already exists.
		return nil
	}

	if s.events != nil {
		if created {
			s.events.ConversationNew(ctx, conv)
		}
		s.events.ConversationUpdated(ctx, conv)
		if msg, err := s.client.Message.Query().
			Where(message.ProviderMessageIDEQ(in.ProviderMessageID)).
			Only(ctx); err == nil {
			s.events.MessageNew(ctx, ch.OrganizationID, msg)
		}
	}
	return nil
}

// upsertContact finds or creates the contact for the sender, updating
// lastSeenAt and adopting the display name only if previously unset.
func (s *WebhookService) upsertContact(ctx context.Context, ch *ent.Channel, in *provider.InboundMessage) (*ent.Contact, error) {
	now := time.Now()

	ct, err := s.client.Contact.Query().
		Where(
			contact.OrganizationIDEQ(ch.OrganizationID),
			contact.ProviderEQ(contact.Provider(in.Provider)),
			contact.ProviderIDEQ(in.SenderID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}

	if ct == nil {
		create := s.client.Contact.Create().
			SetID(uuid.New().String()).
			SetOrganizationID(ch.OrganizationID).
			SetProvider(contact.Provider(in.Provider)).
			SetProviderID(in.SenderID).
			SetLastSeenAt(now).
			SetCreatedAt(now)
		if in.SenderName != "" {
			create = create.SetDisplayName(in.SenderName)
		}
		ct, err = create.Save(ctx)
		if err != nil {
			if !ent.IsConstraintError(err) {
				return nil, fmt.Errorf("failed to create contact: %w", err)
			}
			// Lost a create race with a parallel worker; use theirs.
			ct, err = s.client.Contact.Query().
				Where(
					contact.OrganizationIDEQ(ch.OrganizationID),
					contact.ProviderEQ(contact.Provider(in.Provider)),
					contact.ProviderIDEQ(in.SenderID),
				).
				Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to requery contact: %w", err)
			}
		}
		return ct, nil
	}

	update := s.client.Contact.UpdateOneID(ct.ID).SetLastSeenAt(now)
	if ct.DisplayName == nil && in.SenderName != "" {
		update = update.SetDisplayName(in.SenderName)
	}
	ct, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return ct, nil
}

// dispatchConversation routes the inbound message to the contact's open
// conversation, reopening the latest completed one or creating a new
// one as needed. Returns (nil, ...) when the message was a duplicate.
func (s *WebhookService) dispatchConversation(ctx context.Context, ch *ent.Channel, ct *ent.Contact, in *provider.InboundMessage) (conv *ent.Conversation, created bool, err error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	conv, err = tx.Conversation.Query().
		Where(
			conversation.OrganizationIDEQ(ch.OrganizationID),
			conversation.ChannelIDEQ(ch.ID),
			conversation.ContactIDEQ(ct.ID),
			conversation.StatusIn(conversation.StatusPending, conversation.StatusAssigned),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query open conversation: %w", err)
	}

	now := time.Now()
	ts := in.Timestamp
	if ts.IsZero() {
		ts = now
	}

	if conv == nil {
		completed, err := tx.Conversation.Query().
			Where(
				conversation.OrganizationIDEQ(ch.OrganizationID),
				conversation.ChannelIDEQ(ch.ID),
				conversation.ContactIDEQ(ct.ID),
				conversation.StatusEQ(conversation.StatusCompleted),
			).
			Order(ent.Desc(conversation.FieldUpdatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("failed to query completed conversation: %w", err)
		}

		if completed != nil {
			conv, err = tx.Conversation.UpdateOneID(completed.ID).
				SetStatus(conversation.StatusPending).
				ClearAssignedAgentID().
				SetUpdatedAt(now).
				Save(ctx)
			if err != nil {
				return nil, false, fmt.Errorf("failed to reopen conversation: %w", err)
			}
			if err := appendEvent(ctx, tx, conv.ID, EventReopened, "", nil); err != nil {
				return nil, false, fmt.Errorf("failed to append reopened event: %w", err)
			}
		} else {
			conv, err = tx.Conversation.Create().
				SetID(uuid.New().String()).
				SetOrganizationID(ch.OrganizationID).
				SetChannelID(ch.ID).
				SetContactID(ct.ID).
				SetStatus(conversation.StatusPending).
				SetCreatedAt(now).
				SetUpdatedAt(now).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					// A parallel worker opened the conversation first;
					// the retry will route into it.
					return nil, false, fmt.Errorf("lost conversation create race: %w", err)
				}
				return nil, false, fmt.Errorf("failed to create conversation: %w", err)
			}
			created = true
			if err := appendEvent(ctx, tx, conv.ID, EventCreated, "", nil); err != nil {
				return nil, false, fmt.Errorf("failed to append created event: %w", err)
			}
		}
	}

	msgCreate := tx.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetDirection(message.DirectionInbound).
		SetStatus(message.StatusDelivered).
		SetProviderMessageID(in.ProviderMessageID).
		SetCreatedAt(ts).
		SetUpdatedAt(ts)
	if in.Body != "" {
		msgCreate = msgCreate.SetBody(in.Body)
	}
	if in.MediaRef != "" {
		msgCreate = msgCreate.SetMediaRef(in.MediaRef).SetMediaType(in.MediaType)
	}
	if _, err := msgCreate.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Duplicate delivery of an already-applied message. The
			// transaction rolls back, so no reopen or event leaks out.
			slog.Debug("Duplicate webhook message dropped",
				"provider_message_id", in.ProviderMessageID)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to create inbound message: %w", err)
	}

	// Advance lastMessageAt monotonically; out-of-order deliveries must
	// not move it backwards.
	if _, err := tx.Conversation.Update().
		Where(
			conversation.IDEQ(conv.ID),
			conversation.Or(
				conversation.LastMessageAtIsNil(),
				conversation.LastMessageAtLTE(ts),
			),
		).
		SetLastMessageAt(ts).
		SetUpdatedAt(now).
		Save(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to advance lastMessageAt: %w", err)
	}

	if err := appendEvent(ctx, tx, conv.ID, EventMessageReceived, "",
		map[string]interface{}{"providerMessageId": in.ProviderMessageID}); err != nil {
		return nil, false, fmt.Errorf("failed to append message_received event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit inbound message: %w", err)
	}

	conv, err = s.client.Conversation.Get(ctx, conv.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload conversation: %w", err)
	}
	return conv, created, nil
}

// processStatus applies one delivery/read callback. Callbacks for
// unknown or already-advanced messages are dropped silently.
func (s *WebhookService) processStatus(ctx context.Context, ch *ent.Channel, st *provider.StatusUpdate) error {
	if st.ProviderMessageID != "" {
		if _, err := s.messages.ApplyProviderStatus(ctx, st.ProviderMessageID, st.Status, st.ErrorCode, st.ErrorMessage); err != nil {
			return err
		}
		return nil
	}

	var applyWatermark func(context.Context, string, time.Time) ([]*ent.Message, error)
	switch {
	case st.Watermark.IsZero():
		return nil
	case st.Status == "read":
		applyWatermark = s.messages.ApplyReadWatermark
	case st.Status == "delivered":
		applyWatermark = s.messages.ApplyDeliveredWatermark
	default:
		return nil
	}

	// Watermark-based receipt: resolve the contact and advance every
	// outbound message up to the watermark in their conversations.
	ct, err := s.client.Contact.Query().
		Where(
			contact.OrganizationIDEQ(ch.OrganizationID),
			contact.ProviderEQ(contact.Provider(st.Provider)),
			contact.ProviderIDEQ(st.RecipientID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to resolve watermark contact: %w", err)
	}

	convIDs, err := s.client.Conversation.Query().
		Where(
			conversation.OrganizationIDEQ(ch.OrganizationID),
			conversation.ChannelIDEQ(ch.ID),
			conversation.ContactIDEQ(ct.ID),
		).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list watermark conversations: %w", err)
	}

	for _, convID := range convIDs {
		if _, err := applyWatermark(ctx, convID, st.Watermark); err != nil {
			return err
		}
	}
	return nil
}

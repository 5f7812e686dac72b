package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/services"
)

// OutboundExecutor delivers one queued outbound message through the
// channel's provider adapter.
type OutboundExecutor struct {
	client   *ent.Client
	adapters map[provider.Kind]provider.Adapter
	messages *services.MessageService
}

// NewOutboundExecutor creates a new OutboundExecutor.
func NewOutboundExecutor(client *ent.Client, adapters map[provider.Kind]provider.Adapter, messages *services.MessageService) *OutboundExecutor {
	return &OutboundExecutor{client: client, adapters: adapters, messages: messages}
}

// Execute sends the message referenced by the job. The message only
// moves to failed on a permanent provider error or when the attempt
// budget is exhausted; a retryable failure leaves it pending so the
// next attempt can still deliver it.
func (e *OutboundExecutor) Execute(ctx context.Context, j *ent.Job) error {
	var payload models.OutboundJobPayload
	if err := models.FromPayloadMap(j.Payload, &payload); err != nil {
		return services.NewValidationError("payload", err.Error())
	}

	msg, err := e.client.Message.Get(ctx, payload.MessageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: message %s", services.ErrNotFound, payload.MessageID)
		}
		return fmt.Errorf("failed to load message: %w", err)
	}
	if msg.Status != message.StatusPending {
		// A previous attempt already delivered or failed it.
		slog.Debug("Skipping outbound job, message no longer pending",
			"message_id", msg.ID, "status", msg.Status)
		return nil
	}

	ch, err := e.client.Channel.Get(ctx, payload.ChannelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: channel %s", services.ErrNotFound, payload.ChannelID)
		}
		return fmt.Errorf("failed to load channel: %w", err)
	}

	ct, err := e.client.Contact.Get(ctx, payload.ContactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: contact %s", services.ErrNotFound, payload.ContactID)
		}
		return fmt.Errorf("failed to load contact: %w", err)
	}

	adapter, ok := e.adapters[provider.Kind(ch.Provider)]
	if !ok {
		return services.NewValidationError("provider", "no adapter for provider "+string(ch.Provider))
	}

	outbound := provider.OutboundMessage{RecipientID: ct.ProviderID}
	if msg.Body != nil {
		outbound.Body = *msg.Body
	}
	if msg.MediaRef != nil {
		outbound.MediaRef = *msg.MediaRef
	}
	if msg.MediaType != nil {
		outbound.MediaType = *msg.MediaType
	}

	result, err := adapter.Send(ctx, sendTarget(ch), outbound)
	if err != nil {
		e.recordSendFailure(ctx, msg.ID, j, err)
		return err
	}

	if _, err := e.messages.MarkSent(ctx, msg.ID, result.ProviderMessageID); err != nil {
		if errors.Is(err, services.ErrConflict) {
			// Raced with a duplicate attempt that already recorded it.
			return nil
		}
		return err
	}
	return nil
}

// recordSendFailure marks the message failed when the delivery error is
// permanent or the attempt budget is spent. Retryable mid-budget
// failures leave the message pending for the next attempt.
func (e *OutboundExecutor) recordSendFailure(ctx context.Context, messageID string, j *ent.Job, sendErr error) {
	var provErr *provider.Error
	permanent := errors.As(sendErr, &provErr) && !provErr.Retryable
	if !permanent && j.Attempts < j.MaxAttempts {
		return
	}

	code := "send_failed"
	text := sendErr.Error()
	if provErr != nil {
		code = provErr.Code
		text = provErr.Message
	}
	if _, err := e.messages.MarkFailed(ctx, messageID, code, text); err != nil {
		slog.Error("Failed to record message failure",
			"message_id", messageID, "error", err)
	}
}

// sendTarget extracts the per-channel provider credentials.
func sendTarget(ch *ent.Channel) provider.SendTarget {
	target := provider.SendTarget{}
	if v, ok := ch.Config["access_token"].(string); ok {
		target.AccessToken = v
	}
	if v, ok := ch.Config["phone_number_id"].(string); ok {
		target.PhoneNumberID = v
	}
	if v, ok := ch.Config["page_id"].(string); ok {
		target.PageID = v
	}
	return target
}

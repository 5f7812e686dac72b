package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/pkg/models"
)

const maxBodyLength = 4096

// statusRank orders message statuses for the monotone transition check.
// failed is absorbing and handled separately.
var statusRank = map[message.Status]int{
	message.StatusPending:   0,
	message.StatusSent:      1,
	message.StatusDelivered: 2,
	message.StatusRead:      3,
}

// statusesBelow returns every non-terminal status ranked strictly below
// target, i.e. the statuses a callback may legally advance from.
func statusesBelow(target message.Status) []message.Status {
	rank, ok := statusRank[target]
	if !ok {
		return nil
	}
	var out []message.Status
	for st, r := range statusRank {
		if r < rank {
			out = append(out, st)
		}
	}
	return out
}

// MessageService manages conversation history and the outbound send
// pipeline's persistence side.
type MessageService struct {
	client *ent.Client
	events EventPublisher
}

// NewMessageService creates a new MessageService.
// events may be nil (realtime fan-out disabled).
func NewMessageService(client *ent.Client, events EventPublisher) *MessageService {
	return &MessageService{client: client, events: events}
}

// validateSend folds request violations into a single error.
func validateSend(req models.SendMessageRequest) error {
	var violations []FieldViolation
	if req.Body == "" && req.MediaRef == "" {
		violations = append(violations, FieldViolation{Field: "body", Message: "body or mediaRef is required"})
	}
	if len(req.Body) > maxBodyLength {
		violations = append(violations, FieldViolation{Field: "body", Message: fmt.Sprintf("must be at most %d characters", maxBodyLength)})
	}
	if req.MediaRef != "" && req.MediaType == "" {
		violations = append(violations, FieldViolation{Field: "mediaType", Message: "required when mediaRef is set"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// Send persists a pending outbound message and enqueues the delivery
// job in the same transaction, so a crash never leaves a message
// without its job or a job without its message.
func (s *MessageService) Send(httpCtx context.Context, orgID, conversationID, agentID string, req models.SendMessageRequest) (*ent.Message, error) {
	if err := validateSend(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID), conversation.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv.AssignedAgentID == nil || *conv.AssignedAgentID != agentID {
		return nil, fmt.Errorf("%w: conversation is not assigned to you", ErrForbidden)
	}

	now := time.Now()
	messageID := uuid.New().String()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := tx.Message.Create().
		SetID(messageID).
		SetConversationID(conversationID).
		SetDirection(message.DirectionOutbound).
		SetAgentID(agentID).
		SetStatus(message.StatusPending).
		SetCreatedAt(now).
		SetUpdatedAt(now)
	if req.Body != "" {
		create = create.SetBody(req.Body)
	}
	if req.MediaRef != "" {
		create = create.SetMediaRef(req.MediaRef).SetMediaType(req.MediaType)
	}
	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	convUpdate := tx.Conversation.UpdateOneID(conversationID).
		SetLastMessageAt(now).
		SetUpdatedAt(now)
	if conv.FirstResponseAt == nil {
		convUpdate = convUpdate.SetFirstResponseAt(now)
	}
	if err := convUpdate.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}

	if err := appendEvent(ctx, tx, conversationID, EventMessageSent, agentID,
		map[string]interface{}{"messageId": messageID}); err != nil {
		return nil, fmt.Errorf("failed to append message_sent event: %w", err)
	}

	payload, err := models.ToPayloadMap(models.OutboundJobPayload{
		MessageID:      messageID,
		ConversationID: conversationID,
		ChannelID:      conv.ChannelID,
		ContactID:      conv.ContactID,
	})
	if err != nil {
		return nil, err
	}
	if err := tx.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(job.QueueOutbound).
		SetPayload(payload).
		SetStatus(job.StatusPending).
		SetRunAt(now).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to enqueue outbound job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit send: %w", err)
	}

	if s.events != nil {
		s.events.MessageNew(ctx, orgID, msg)
		if updated, err := s.client.Conversation.Get(ctx, conversationID); err == nil {
			s.events.ConversationUpdated(ctx, updated)
		}
	}
	return msg, nil
}

// ListMessages returns one page of conversation history, newest first.
// The cursor is a message id; limit+1 rows are fetched internally to
// detect continuation.
func (s *MessageService) ListMessages(httpCtx context.Context, orgID string, req models.ListMessagesRequest) (*models.MessagePage, error) {
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	exists, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(req.ConversationID), conversation.OrganizationIDEQ(orgID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	query := s.client.Message.Query().
		Where(message.ConversationIDEQ(req.ConversationID))

	if req.Cursor != "" {
		cur, err := s.client.Message.Query().
			Where(message.IDEQ(req.Cursor), message.ConversationIDEQ(req.ConversationID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("cursor", "unknown cursor")
			}
			return nil, fmt.Errorf("failed to resolve cursor: %w", err)
		}
		query = query.Where(
			message.Or(
				message.CreatedAtLT(cur.CreatedAt),
				message.And(message.CreatedAtEQ(cur.CreatedAt), message.IDLT(cur.ID)),
			),
		)
	}

	msgs, err := query.
		Order(ent.Desc(message.FieldCreatedAt), ent.Desc(message.FieldID)).
		Limit(req.Limit + 1).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	page := &models.MessagePage{Data: msgs}
	if len(msgs) > req.Limit {
		page.Data = msgs[:req.Limit]
		page.NextCursor = &page.Data[req.Limit-1].ID
	}
	return page, nil
}

// MarkSent records a successful provider delivery: pending moves to
// sent and the provider's message id becomes the callback dedup key.
func (s *MessageService) MarkSent(ctx context.Context, messageID, providerMessageID string) (*ent.Message, error) {
	n, err := s.client.Message.Update().
		Where(message.IDEQ(messageID), message.StatusEQ(message.StatusPending)).
		SetStatus(message.StatusSent).
		SetProviderMessageID(providerMessageID).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark message sent: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: message is not pending", ErrConflict)
	}

	msg, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}
	if s.events != nil {
		s.events.MessageUpdated(ctx, msg)
	}
	return msg, nil
}

// MarkFailed records a terminal delivery failure. Failed is absorbing:
// only pending and sent messages can fail.
func (s *MessageService) MarkFailed(ctx context.Context, messageID, errorCode, errorMessage string) (*ent.Message, error) {
	n, err := s.client.Message.Update().
		Where(
			message.IDEQ(messageID),
			message.StatusIn(message.StatusPending, message.StatusSent),
		).
		SetStatus(message.StatusFailed).
		SetErrorCode(errorCode).
		SetErrorMessage(errorMessage).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark message failed: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: message cannot fail from its current status", ErrConflict)
	}

	msg, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}

	if err := s.appendMessageEvent(ctx, msg, EventMessageFailed); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.MessageUpdated(ctx, msg)
	}
	return msg, nil
}

// ApplyProviderStatus applies a delivery/read callback keyed by the
// provider's message id. Only monotone forward transitions persist; a
// late regressing callback matches no rows and is dropped. The returned
// message is nil when the callback was dropped or unknown.
func (s *MessageService) ApplyProviderStatus(ctx context.Context, providerMessageID, status, errorCode, errorMessage string) (*ent.Message, error) {
	target := message.Status(status)

	switch target {
	case message.StatusFailed:
		update := s.client.Message.Update().
			Where(
				message.ProviderMessageIDEQ(providerMessageID),
				message.StatusIn(message.StatusPending, message.StatusSent),
			).
			SetStatus(message.StatusFailed).
			SetUpdatedAt(time.Now())
		if errorCode != "" {
			update = update.SetErrorCode(errorCode)
		}
		if errorMessage != "" {
			update = update.SetErrorMessage(errorMessage)
		}
		n, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to apply failed status: %w", err)
		}
		if n == 0 {
			return nil, nil
		}
	case message.StatusSent, message.StatusDelivered, message.StatusRead:
		n, err := s.client.Message.Update().
			Where(
				message.ProviderMessageIDEQ(providerMessageID),
				message.StatusIn(statusesBelow(target)...),
			).
			SetStatus(target).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to apply %s status: %w", status, err)
		}
		if n == 0 {
			return nil, nil
		}
	default:
		return nil, NewValidationError("status", "unknown status "+status)
	}

	msg, err := s.client.Message.Query().
		Where(message.ProviderMessageIDEQ(providerMessageID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}

	if evtType := auditEventForStatus(target); evtType != "" {
		if err := s.appendMessageEvent(ctx, msg, evtType); err != nil {
			return nil, err
		}
	}
	if s.events != nil {
		s.events.MessageUpdated(ctx, msg)
	}
	return msg, nil
}

// ApplyReadWatermark marks every outbound message in the conversation
// created at or before the watermark as read. Used for providers whose
// read receipts cover a time range instead of individual messages.
func (s *MessageService) ApplyReadWatermark(ctx context.Context, conversationID string, watermark time.Time) ([]*ent.Message, error) {
	return s.applyWatermark(ctx, conversationID, watermark, message.StatusRead)
}

// ApplyDeliveredWatermark is the delivery-receipt counterpart: some
// providers omit per-message IDs and only report "everything up to this
// instant was delivered".
func (s *MessageService) ApplyDeliveredWatermark(ctx context.Context, conversationID string, watermark time.Time) ([]*ent.Message, error) {
	return s.applyWatermark(ctx, conversationID, watermark, message.StatusDelivered)
}

func (s *MessageService) applyWatermark(ctx context.Context, conversationID string, watermark time.Time, target message.Status) ([]*ent.Message, error) {
	// Pending messages have not reached the provider and stay outside
	// any watermark; the eligible set keeps the transition monotone.
	var eligible []message.Status
	switch target {
	case message.StatusDelivered:
		eligible = []message.Status{message.StatusSent}
	case message.StatusRead:
		eligible = []message.Status{message.StatusSent, message.StatusDelivered}
	default:
		return nil, NewValidationError("status", "watermark cannot target "+string(target))
	}

	affected, err := s.client.Message.Query().
		Where(
			message.ConversationIDEQ(conversationID),
			message.DirectionEQ(message.DirectionOutbound),
			message.CreatedAtLTE(watermark),
			message.StatusIn(eligible...),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find watermark messages: %w", err)
	}
	if len(affected) == 0 {
		return nil, nil
	}

	_, err = s.client.Message.Update().
		Where(
			message.IDIn(affected...),
			message.StatusIn(eligible...),
		).
		SetStatus(target).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s watermark: %w", target, err)
	}

	msgs, err := s.client.Message.Query().
		Where(message.IDIn(affected...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload watermark messages: %w", err)
	}

	for _, msg := range msgs {
		if err := s.appendMessageEvent(ctx, msg, auditEventForStatus(target)); err != nil {
			return nil, err
		}
		if s.events != nil {
			s.events.MessageUpdated(ctx, msg)
		}
	}
	return msgs, nil
}

func auditEventForStatus(status message.Status) string {
	switch status {
	case message.StatusDelivered:
		return EventMessageDelivered
	case message.StatusRead:
		return EventMessageRead
	case message.StatusFailed:
		return EventMessageFailed
	}
	return ""
}

func (s *MessageService) appendMessageEvent(ctx context.Context, msg *ent.Message, eventType string) error {
	if err := s.client.ConversationEvent.Create().
		SetID(uuid.New().String()).
		SetConversationID(msg.ConversationID).
		SetEventType(eventType).
		SetMetadata(map[string]interface{}{"messageId": msg.ID}).
		SetCreatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	return nil
}

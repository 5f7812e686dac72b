// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/channel"
	"github.com/omniboxhq/omnibox/ent/contact"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/conversationevent"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/ent/user"
	"github.com/omniboxhq/omnibox/pkg/coord"
	"github.com/omniboxhq/omnibox/pkg/models"
)

// Locker is the subset of the coordination store used by the accept path.
type Locker interface {
	TryLock(ctx context.Context, key, owner string) (bool, error)
	Unlock(ctx context.Context, key, owner string) error
}

// ConversationService implements the conversation dispatch state machine.
type ConversationService struct {
	client *ent.Client
	locker Locker
	events EventPublisher
}

// NewConversationService creates a new ConversationService.
// events may be nil (realtime fan-out disabled).
func NewConversationService(client *ent.Client, locker Locker, events EventPublisher) *ConversationService {
	return &ConversationService{client: client, locker: locker, events: events}
}

// Accept assigns a pending conversation to an agent. Two agents on
// different replicas may race here; the coordination lock admits one
// attempt at a time, and the status-conditional update is the final
// arbiter so exclusivity holds even if the lock degrades.
func (s *ConversationService) Accept(httpCtx context.Context, orgID, conversationID, agentID string) (*ent.Conversation, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	lockKey := coord.ConversationLockKey(conversationID)
	acquired, err := s.locker.TryLock(ctx, lockKey, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire accept lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: conversation is being processed", ErrConflict)
	}
	defer func() {
		// Best effort; the TTL cleans up after us if this fails.
		if err := s.locker.Unlock(context.WithoutCancel(ctx), lockKey, agentID); err != nil {
			slog.Warn("Failed to release accept lock", "conversation_id", conversationID, "error", err)
		}
	}()

	// The lock admits entrance but does not guarantee the prior state;
	// re-read before mutating.
	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID), conversation.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv.Status != conversation.StatusPending {
		return nil, fmt.Errorf("%w: conversation is not available", ErrConflict)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Conversation.Update().
		Where(
			conversation.IDEQ(conversationID),
			conversation.StatusEQ(conversation.StatusPending),
		).
		SetStatus(conversation.StatusAssigned).
		SetAssignedAgentID(agentID).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign conversation: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: conversation is not available", ErrConflict)
	}

	if err := appendEvent(ctx, tx, conversationID, EventAccepted, agentID, nil); err != nil {
		return nil, fmt.Errorf("failed to append accepted event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit accept: %w", err)
	}

	conv, err = s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload conversation: %w", err)
	}

	if s.events != nil {
		s.events.ConversationAssigned(ctx, conv)
		s.events.ConversationUpdated(ctx, conv)
	}
	return conv, nil
}

// Release returns an assigned conversation to the pending pool. Only
// the assigned agent may release.
func (s *ConversationService) Release(httpCtx context.Context, orgID, conversationID, agentID string) (*ent.Conversation, error) {
	return s.unassign(httpCtx, orgID, conversationID, agentID, conversation.StatusPending, EventReleased)
}

// Complete closes an assigned conversation. Only the assigned agent may
// complete; the assignment is cleared so a completed conversation never
// carries an agent.
func (s *ConversationService) Complete(httpCtx context.Context, orgID, conversationID, agentID string) (*ent.Conversation, error) {
	return s.unassign(httpCtx, orgID, conversationID, agentID, conversation.StatusCompleted, EventCompleted)
}

// unassign moves an assigned conversation to target under the ownership
// precondition, appending the matching audit event.
func (s *ConversationService) unassign(httpCtx context.Context, orgID, conversationID, agentID string, target conversation.Status, eventType string) (*ent.Conversation, error) {
	if conversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Conversation.Update().
		Where(
			conversation.IDEQ(conversationID),
			conversation.OrganizationIDEQ(orgID),
			conversation.StatusEQ(conversation.StatusAssigned),
			conversation.AssignedAgentIDEQ(agentID),
		).
		SetStatus(target).
		ClearAssignedAgentID().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	if n == 0 {
		return nil, s.classifyUnassignFailure(ctx, orgID, conversationID, agentID)
	}

	if err := appendEvent(ctx, tx, conversationID, eventType, agentID, nil); err != nil {
		return nil, fmt.Errorf("failed to append %s event: %w", eventType, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload conversation: %w", err)
	}

	if s.events != nil {
		switch target {
		case conversation.StatusPending:
			s.events.ConversationReleased(ctx, conv)
		case conversation.StatusCompleted:
			s.events.ConversationCompleted(ctx, conv)
		}
		s.events.ConversationUpdated(ctx, conv)
	}
	return conv, nil
}

// classifyUnassignFailure distinguishes why the conditional update
// matched no rows: missing, wrong state, or wrong owner.
func (s *ConversationService) classifyUnassignFailure(ctx context.Context, orgID, conversationID, agentID string) error {
	conv, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID), conversation.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv.Status != conversation.StatusAssigned {
		return fmt.Errorf("%w: conversation is not assigned", ErrConflict)
	}
	if conv.AssignedAgentID == nil || *conv.AssignedAgentID != agentID {
		return fmt.Errorf("%w: conversation is assigned to another agent", ErrForbidden)
	}
	return fmt.Errorf("%w: conversation changed concurrently", ErrConflict)
}

// ReleaseByAgent returns every conversation assigned to the agent to the
// pending pool. Invoked on socket disconnect; per-conversation failures
// are logged and skipped so one bad row cannot wedge the rest.
func (s *ConversationService) ReleaseByAgent(ctx context.Context, agentID string) ([]*ent.Conversation, error) {
	assigned, err := s.client.Conversation.Query().
		Where(
			conversation.StatusEQ(conversation.StatusAssigned),
			conversation.AssignedAgentIDEQ(agentID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned conversations: %w", err)
	}

	released := make([]*ent.Conversation, 0, len(assigned))
	for _, conv := range assigned {
		if err := s.releaseDisconnected(ctx, conv.ID, agentID); err != nil {
			slog.Error("Failed to release conversation on disconnect",
				"conversation_id", conv.ID, "agent_id", agentID, "error", err)
			continue
		}

		updated, err := s.client.Conversation.Get(ctx, conv.ID)
		if err != nil {
			slog.Error("Failed to reload released conversation",
				"conversation_id", conv.ID, "error", err)
			continue
		}
		released = append(released, updated)

		if s.events != nil {
			s.events.ConversationReleased(ctx, updated)
			s.events.ConversationUpdated(ctx, updated)
		}
	}
	return released, nil
}

func (s *ConversationService) releaseDisconnected(ctx context.Context, conversationID, agentID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Conversation.Update().
		Where(
			conversation.IDEQ(conversationID),
			conversation.StatusEQ(conversation.StatusAssigned),
			conversation.AssignedAgentIDEQ(agentID),
		).
		SetStatus(conversation.StatusPending).
		ClearAssignedAgentID().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release conversation: %w", err)
	}
	if n == 0 {
		// Already released or reassigned; nothing to record.
		return nil
	}

	if err := appendEvent(ctx, tx, conversationID, EventAgentDisconnected, agentID, nil); err != nil {
		return fmt.Errorf("failed to append disconnect event: %w", err)
	}
	return tx.Commit()
}

// Get loads one conversation with its joined contact, channel, and
// assigned agent, scoped to the organization.
func (s *ConversationService) Get(httpCtx context.Context, orgID, conversationID string) (*models.ConversationWithRelations, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
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

	return s.loadRelations(ctx, conv)
}

// List returns a filtered page of conversations ordered by last activity,
// with joined contact, channel, and assigned agent.
func (s *ConversationService) List(httpCtx context.Context, req models.ListConversationsRequest) (*models.ConversationPage, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	query := s.client.Conversation.Query().
		Where(conversation.OrganizationIDEQ(req.OrganizationID))

	if req.Status != "" {
		st := conversation.Status(req.Status)
		if err := conversation.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", "must be one of pending, assigned, completed")
		}
		query = query.Where(conversation.StatusEQ(st))
	}
	if req.ChannelID != "" {
		query = query.Where(conversation.ChannelIDEQ(req.ChannelID))
	}
	if req.AssignedAgentID != "" {
		query = query.Where(conversation.AssignedAgentIDEQ(req.AssignedAgentID))
	}
	if req.Search != "" {
		contactIDs, err := s.client.Contact.Query().
			Where(
				contact.OrganizationIDEQ(req.OrganizationID),
				contact.Or(
					contact.DisplayNameContainsFold(req.Search),
					contact.ProviderIDContainsFold(req.Search),
				),
			).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to search contacts: %w", err)
		}
		query = query.Where(conversation.ContactIDIn(contactIDs...))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}

	convs, err := query.
		Order(ent.Desc(conversation.FieldLastMessageAt), ent.Desc(conversation.FieldCreatedAt)).
		Offset((req.Page - 1) * req.Limit).
		Limit(req.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	items := make([]*models.ConversationWithRelations, 0, len(convs))
	for _, conv := range convs {
		item, err := s.loadRelations(ctx, conv)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &models.ConversationPage{
		Conversations: items,
		Page:          req.Page,
		Limit:         req.Limit,
		Total:         total,
	}, nil
}

// ListEvents returns the audit trail for a conversation, newest first.
func (s *ConversationService) ListEvents(httpCtx context.Context, orgID, conversationID string, page, limit int) ([]*ent.ConversationEvent, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	// Scope check before touching the audit trail.
	exists, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID), conversation.OrganizationIDEQ(orgID)).
		Exist(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, 0, ErrNotFound
	}

	query := s.client.ConversationEvent.Query().
		Where(conversationevent.ConversationIDEQ(conversationID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	evts, err := query.
		Order(ent.Desc(conversationevent.FieldCreatedAt)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return evts, total, nil
}

// loadRelations joins the rows the dashboard renders with a conversation.
func (s *ConversationService) loadRelations(ctx context.Context, conv *ent.Conversation) (*models.ConversationWithRelations, error) {
	result := &models.ConversationWithRelations{Conversation: conv}

	ct, err := s.client.Contact.Query().Where(contact.IDEQ(conv.ContactID)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	result.Contact = ct

	ch, err := s.client.Channel.Query().Where(channel.IDEQ(conv.ChannelID)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load channel: %w", err)
	}
	result.Channel = ch

	if conv.AssignedAgentID != nil {
		agent, err := s.client.User.Query().Where(user.IDEQ(*conv.AssignedAgentID)).Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load assigned agent: %w", err)
		}
		result.AssignedAgent = agent
	}

	last, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conv.ID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load last message: %w", err)
	}
	if err == nil {
		result.LastMessage = last
	}

	return result, nil
}

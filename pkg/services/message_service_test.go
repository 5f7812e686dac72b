package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/conversationevent"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOutboundMessage(t *testing.T, client *ent.Client, conversationID, agentID string, status message.Status, createdAt time.Time) *ent.Message {
	t.Helper()
	create := client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conversationID).
		SetDirection(message.DirectionOutbound).
		SetAgentID(agentID).
		SetBody("hello").
		SetStatus(status).
		SetCreatedAt(createdAt).
		SetUpdatedAt(createdAt)
	if status != message.StatusPending {
		create = create.SetProviderMessageID("wamid." + uuid.New().String())
	}
	msg, err := create.Save(context.Background())
	require.NoError(t, err)
	return msg
}

func TestMessageService_Send(t *testing.T) {
	client, f := setupFixture(t)
	events := &recordingPublisher{}
	svc := NewMessageService(client, events)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	msg, err := svc.Send(ctx, f.Org.ID, conv.ID, f.Agent.ID, models.SendMessageRequest{
		Body: "Thanks for reaching out",
	})
	require.NoError(t, err)
	assert.Equal(t, message.StatusPending, msg.Status)
	assert.Equal(t, message.DirectionOutbound, msg.Direction)
	require.NotNil(t, msg.AgentID)
	assert.Equal(t, f.Agent.ID, *msg.AgentID)

	// The delivery job rides the same transaction.
	jobs, err := client.Job.Query().
		Where(job.QueueEQ(job.QueueOutbound), job.StatusEQ(job.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	var payload models.OutboundJobPayload
	require.NoError(t, models.FromPayloadMap(jobs[0].Payload, &payload))
	assert.Equal(t, msg.ID, payload.MessageID)
	assert.Equal(t, conv.ID, payload.ConversationID)
	assert.Equal(t, f.Channel.ID, payload.ChannelID)

	// First agent reply stamps firstResponseAt and advances lastMessageAt.
	got, err := client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FirstResponseAt)
	require.NotNil(t, got.LastMessageAt)

	firstResponse := *got.FirstResponseAt

	// A second send leaves firstResponseAt alone.
	_, err = svc.Send(ctx, f.Org.ID, conv.ID, f.Agent.ID, models.SendMessageRequest{Body: "anything else?"})
	require.NoError(t, err)
	got, err = client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.True(t, got.FirstResponseAt.Equal(firstResponse))

	assert.Equal(t, 2, events.Count("message.new"))
}

func TestMessageService_Send_NotAssignee(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	_, err := svc.Send(ctx, f.Org.ID, conv.ID, f.Agent2.ID, models.SendMessageRequest{Body: "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForbidden))

	// Unassigned conversations reject sends the same way.
	err = client.Conversation.UpdateOneID(conv.ID).
		SetStatus(conversation.StatusPending).
		ClearAssignedAgentID().
		Exec(ctx)
	require.NoError(t, err)
	_, err = svc.Send(ctx, f.Org.ID, conv.ID, f.Agent.ID, models.SendMessageRequest{Body: "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestMessageService_Send_Validation(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	tests := []struct {
		name string
		req  models.SendMessageRequest
	}{
		{"empty", models.SendMessageRequest{}},
		{"body too long", models.SendMessageRequest{Body: string(make([]byte, 5000))}},
		{"media without type", models.SendMessageRequest{MediaRef: "uploads/img.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, f.Org.ID, conv.ID, f.Agent.ID, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestMessageService_ListMessages_Pagination(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	base := time.Now().Add(-1 * time.Hour)
	var ids []string
	for i := 0; i < 7; i++ {
		msg := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, msg.ID)
	}

	// Walk the history in pages of 3 and reassemble it.
	var seen []string
	cursor := ""
	pages := 0
	for {
		page, err := svc.ListMessages(ctx, f.Org.ID, models.ListMessagesRequest{
			ConversationID: conv.ID,
			Limit:          3,
			Cursor:         cursor,
		})
		require.NoError(t, err)
		for _, m := range page.Data {
			seen = append(seen, m.ID)
		}
		pages++
		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}

	assert.Equal(t, 3, pages)
	require.Len(t, seen, 7)
	// Newest first, no gaps, no duplicates.
	for i, id := range seen {
		assert.Equal(t, ids[len(ids)-1-i], id, "position %d", i)
	}
}

func TestMessageService_ListMessages_BadCursor(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	_, err := svc.ListMessages(ctx, f.Org.ID, models.ListMessagesRequest{
		ConversationID: conv.ID,
		Cursor:         "not-a-message",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.ListMessages(ctx, f.Org.ID, models.ListMessagesRequest{
		ConversationID: "missing",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMessageService_MarkSentAndFailed(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	msg := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusPending, time.Now())

	got, err := svc.MarkSent(ctx, msg.ID, "wamid.outbound-1")
	require.NoError(t, err)
	assert.Equal(t, message.StatusSent, got.Status)
	require.NotNil(t, got.ProviderMessageID)
	assert.Equal(t, "wamid.outbound-1", *got.ProviderMessageID)

	// Marking sent twice conflicts.
	_, err = svc.MarkSent(ctx, msg.ID, "wamid.outbound-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	// Sent can still fail.
	got, err = svc.MarkFailed(ctx, msg.ID, "131026", "recipient unreachable")
	require.NoError(t, err)
	assert.Equal(t, message.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, "131026", *got.ErrorCode)

	n, err := client.ConversationEvent.Query().
		Where(
			conversationevent.ConversationIDEQ(conv.ID),
			conversationevent.EventTypeEQ(EventMessageFailed),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Failed is absorbing.
	_, err = svc.MarkFailed(ctx, msg.ID, "x", "y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestMessageService_ApplyProviderStatus_Monotone(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	msg := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, time.Now())
	pmid := *msg.ProviderMessageID

	got, err := svc.ApplyProviderStatus(ctx, pmid, "read", "", "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, message.StatusRead, got.Status)

	// A late delivered callback must not regress read.
	got, err = svc.ApplyProviderStatus(ctx, pmid, "delivered", "", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	reloaded, err := client.Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusRead, reloaded.Status)

	// Read messages no longer fail.
	got, err = svc.ApplyProviderStatus(ctx, pmid, "failed", "1", "boom")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Unknown provider ids are dropped, not errors.
	got, err = svc.ApplyProviderStatus(ctx, "wamid.unknown", "delivered", "", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Unknown statuses are rejected before touching anything.
	_, err = svc.ApplyProviderStatus(ctx, pmid, "vanished", "", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestMessageService_ApplyProviderStatus_AuditTrail(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewMessageService(client, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	msg := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, time.Now())
	pmid := *msg.ProviderMessageID

	_, err := svc.ApplyProviderStatus(ctx, pmid, "delivered", "", "")
	require.NoError(t, err)
	_, err = svc.ApplyProviderStatus(ctx, pmid, "read", "", "")
	require.NoError(t, err)

	for _, evtType := range []string{EventMessageDelivered, EventMessageRead} {
		n, err := client.ConversationEvent.Query().
			Where(
				conversationevent.ConversationIDEQ(conv.ID),
				conversationevent.EventTypeEQ(evtType),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n, evtType)
	}
}

func TestMessageService_ApplyReadWatermark(t *testing.T) {
	client, f := setupFixture(t)
	events := &recordingPublisher{}
	svc := NewMessageService(client, events)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	base := time.Now().Add(-30 * time.Minute)
	before1 := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, base)
	before2 := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusDelivered, base.Add(5*time.Minute))
	after := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, base.Add(20*time.Minute))
	failed := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusFailed, base)

	watermark := base.Add(10 * time.Minute)
	msgs, err := svc.ApplyReadWatermark(ctx, conv.ID, watermark)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	for _, id := range []string{before1.ID, before2.ID} {
		got, err := client.Message.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, message.StatusRead, got.Status)
	}

	// Messages past the watermark and terminal messages stay put.
	gotAfter, err := client.Message.Get(ctx, after.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusSent, gotAfter.Status)
	gotFailed, err := client.Message.Get(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusFailed, gotFailed.Status)

	assert.Equal(t, 2, events.Count("message.updated"))

	// Replaying the watermark is a no-op.
	msgs, err = svc.ApplyReadWatermark(ctx, conv.ID, watermark)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestStatusesBelow(t *testing.T) {
	tests := []struct {
		target message.Status
		want   int
	}{
		{message.StatusSent, 1},
		{message.StatusDelivered, 2},
		{message.StatusRead, 3},
		{message.Status("bogus"), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			assert.Len(t, statusesBelow(tt.target), tt.want)
		})
	}
}

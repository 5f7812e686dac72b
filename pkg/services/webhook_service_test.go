package services

import (
	"context"
	"testing"
	"time"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/contact"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/conversationevent"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookService(client *ent.Client, adapter provider.Adapter, events EventPublisher) *WebhookService {
	messages := NewMessageService(client, events)
	return NewWebhookService(client, map[provider.Kind]provider.Adapter{
		adapter.Kind(): adapter,
	}, messages, events)
}

func inboundEvent(pmid, sender, body string, at time.Time) provider.Event {
	return provider.Event{Message: &provider.InboundMessage{
		Provider:          provider.KindWhatsApp,
		ProviderMessageID: pmid,
		SenderID:          sender,
		SenderName:        "Grace",
		Body:              body,
		Timestamp:         at,
	}}
}

func TestWebhookService_Inbound_CreatesConversation(t *testing.T) {
	client, f := setupFixture(t)
	events := &recordingPublisher{}
	adapter := &stubAdapter{
		kind:   provider.KindWhatsApp,
		events: []provider.Event{inboundEvent("wamid.in-1", "491700009999", "hi there", time.Now())},
	}
	svc := newWebhookService(client, adapter, events)
	ctx := context.Background()

	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	// New contact adopted from the payload.
	ct, err := client.Contact.Query().
		Where(contact.ProviderIDEQ("491700009999")).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, ct.DisplayName)
	assert.Equal(t, "Grace", *ct.DisplayName)

	// One pending conversation with the message inside.
	conv, err := client.Conversation.Query().
		Where(conversation.ContactIDEQ(ct.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusPending, conv.Status)
	require.NotNil(t, conv.LastMessageAt)

	msg, err := client.Message.Query().
		Where(message.ConversationIDEQ(conv.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, message.DirectionInbound, msg.Direction)
	assert.Equal(t, message.StatusDelivered, msg.Status)
	require.NotNil(t, msg.ProviderMessageID)
	assert.Equal(t, "wamid.in-1", *msg.ProviderMessageID)

	for _, evtType := range []string{EventCreated, EventMessageReceived} {
		n, err := client.ConversationEvent.Query().
			Where(
				conversationevent.ConversationIDEQ(conv.ID),
				conversationevent.EventTypeEQ(evtType),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n, evtType)
	}

	assert.Equal(t, 1, events.Count("conversation.new"))
	assert.Equal(t, 1, events.Count("message.new"))
}

func TestWebhookService_Inbound_Idempotent(t *testing.T) {
	client, f := setupFixture(t)
	adapter := &stubAdapter{
		kind:   provider.KindWhatsApp,
		events: []provider.Event{inboundEvent("wamid.dup", "491700008888", "only once", time.Now())},
	}
	svc := newWebhookService(client, adapter, nil)
	ctx := context.Background()

	// The provider redelivers the same webhook three times.
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))
	}

	n, err := client.Message.Query().
		Where(message.ProviderMessageIDEQ("wamid.dup")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Replays do not multiply conversations or audit events.
	ct, err := client.Contact.Query().
		Where(contact.ProviderIDEQ("491700008888")).
		Only(ctx)
	require.NoError(t, err)
	convCount, err := client.Conversation.Query().
		Where(conversation.ContactIDEQ(ct.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, convCount)
}

func TestWebhookService_Inbound_RoutesToOpenConversation(t *testing.T) {
	client, f := setupFixture(t)
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	svc := newWebhookService(client, adapter, nil)
	ctx := context.Background()

	adapter.events = []provider.Event{inboundEvent("wamid.open-1", f.Contact.ProviderID, "first", time.Now())}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	adapter.events = []provider.Event{inboundEvent("wamid.open-2", f.Contact.ProviderID, "second", time.Now())}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	convs, err := client.Conversation.Query().
		Where(conversation.ContactIDEQ(f.Contact.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)

	msgs, err := client.Message.Query().
		Where(message.ConversationIDEQ(convs[0].ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, msgs)
}

func TestWebhookService_Inbound_ReopensCompleted(t *testing.T) {
	client, f := setupFixture(t)
	events := &recordingPublisher{}
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	svc := newWebhookService(client, adapter, events)
	ctx := context.Background()

	done := createConversation(t, client, f, conversation.StatusCompleted, "")

	adapter.events = []provider.Event{inboundEvent("wamid.back", f.Contact.ProviderID, "me again", time.Now())}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	got, err := client.Conversation.Get(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusPending, got.Status)
	assert.Nil(t, got.AssignedAgentID)

	n, err := client.ConversationEvent.Query().
		Where(
			conversationevent.ConversationIDEQ(done.ID),
			conversationevent.EventTypeEQ(EventReopened),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A reopen is an update, not a brand new conversation.
	assert.Equal(t, 0, events.Count("conversation.new"))
	assert.Equal(t, 1, events.Count("conversation.updated"))
}

func TestWebhookService_Inbound_LastMessageAtMonotone(t *testing.T) {
	client, f := setupFixture(t)
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	svc := newWebhookService(client, adapter, nil)
	ctx := context.Background()

	now := time.Now().Truncate(time.Millisecond)
	adapter.events = []provider.Event{inboundEvent("wamid.t2", f.Contact.ProviderID, "newer", now)}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	// An older message delivered late must not rewind the clock.
	adapter.events = []provider.Event{inboundEvent("wamid.t1", f.Contact.ProviderID, "older", now.Add(-10*time.Minute))}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	conv, err := client.Conversation.Query().
		Where(conversation.ContactIDEQ(f.Contact.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, conv.LastMessageAt)
	assert.False(t, conv.LastMessageAt.Before(now))

	// Both messages are kept.
	n, err := client.Message.Query().
		Where(message.ConversationIDEQ(conv.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWebhookService_StatusCallback(t *testing.T) {
	client, f := setupFixture(t)
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	messages := NewMessageService(client, nil)
	svc := NewWebhookService(client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, messages, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	msg := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, time.Now())

	adapter.events = []provider.Event{{Status: &provider.StatusUpdate{
		Provider:          provider.KindWhatsApp,
		ProviderMessageID: *msg.ProviderMessageID,
		Status:            "delivered",
	}}}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	got, err := client.Message.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusDelivered, got.Status)

	// Callbacks for unknown messages are swallowed.
	adapter.events = []provider.Event{{Status: &provider.StatusUpdate{
		Provider:          provider.KindWhatsApp,
		ProviderMessageID: "wamid.ghost",
		Status:            "delivered",
	}}}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))
}

func TestWebhookService_WatermarkRead(t *testing.T) {
	client, f := setupFixture(t)
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	messages := NewMessageService(client, nil)
	svc := NewWebhookService(client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, messages, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	old := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusDelivered, time.Now().Add(-time.Hour))
	fresh := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, time.Now().Add(time.Hour))

	adapter.events = []provider.Event{{Status: &provider.StatusUpdate{
		Provider:    provider.KindWhatsApp,
		RecipientID: f.Contact.ProviderID,
		Status:      "read",
		Watermark:   time.Now(),
	}}}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	gotOld, err := client.Message.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusRead, gotOld.Status)

	gotFresh, err := client.Message.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusSent, gotFresh.Status)
}

func TestWebhookService_WatermarkDelivered(t *testing.T) {
	client, f := setupFixture(t)
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	messages := NewMessageService(client, nil)
	svc := NewWebhookService(client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, messages, nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	sent := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusSent, time.Now().Add(-time.Hour))
	queued := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusPending, time.Now().Add(-time.Hour))
	seen := createOutboundMessage(t, client, conv.ID, f.Agent.ID, message.StatusRead, time.Now().Add(-time.Hour))

	// Delivery receipt with no message IDs, only a watermark.
	adapter.events = []provider.Event{{Status: &provider.StatusUpdate{
		Provider:    provider.KindWhatsApp,
		RecipientID: f.Contact.ProviderID,
		Status:      "delivered",
		Watermark:   time.Now(),
	}}}
	require.NoError(t, svc.ProcessPayload(ctx, f.Channel.ID, []byte(`{}`)))

	gotSent, err := client.Message.Get(ctx, sent.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusDelivered, gotSent.Status)

	// Not yet sent: outside any watermark.
	gotQueued, err := client.Message.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusPending, gotQueued.Status)

	// Already read: a delivered watermark must not regress it.
	gotSeen, err := client.Message.Get(ctx, seen.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusRead, gotSeen.Status)
}

func TestWebhookService_UnknownChannel(t *testing.T) {
	client, _ := setupFixture(t)
	adapter := &stubAdapter{kind: provider.KindWhatsApp}
	messages := NewMessageService(client, nil)
	svc := NewWebhookService(client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, messages, nil)

	err := svc.ProcessPayload(context.Background(), "missing-channel", []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

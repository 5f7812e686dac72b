package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/channel"
	"github.com/omniboxhq/omnibox/ent/contact"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/ent/message"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/services"
	"github.com/omniboxhq/omnibox/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sendFunc lets each test script the provider response.
type scriptedAdapter struct {
	kind     provider.Kind
	sendFunc func(provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error)
	lastSent *provider.OutboundMessage
}

func (a *scriptedAdapter) Kind() provider.Kind { return a.kind }

func (a *scriptedAdapter) ExtractAddressingID([]byte) (string, error) { return "", nil }

func (a *scriptedAdapter) ParseWebhook([]byte) ([]provider.Event, error) { return nil, nil }

func (a *scriptedAdapter) Send(_ context.Context, target provider.SendTarget, msg provider.OutboundMessage) (*provider.SendResult, error) {
	a.lastSent = &msg
	return a.sendFunc(target, msg)
}

type outboundFixture struct {
	client  *ent.Client
	channel *ent.Channel
	contact *ent.Contact
	msg     *ent.Message
	job     *ent.Job
}

func setupOutbound(t *testing.T) *outboundFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	org, err := client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Acme").
		SetSlug("acme-" + uuid.New().String()[:8]).
		Save(ctx)
	require.NoError(t, err)

	ch, err := client.Channel.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetProvider(channel.ProviderWhatsapp).
		SetName("Main").
		SetConfig(map[string]interface{}{
			"phone_number_id": "15550001111",
			"access_token":    "tok",
		}).
		SetWebhookSecret("verify").
		Save(ctx)
	require.NoError(t, err)

	ct, err := client.Contact.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetProvider(contact.ProviderWhatsapp).
		SetProviderID("491700001111").
		SetLastSeenAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	agent, err := client.User.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetEmail(uuid.New().String() + "@example.com").
		SetDisplayName("Agent").
		Save(ctx)
	require.NoError(t, err)

	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetChannelID(ch.ID).
		SetContactID(ct.ID).
		SetStatus(conversation.StatusAssigned).
		SetAssignedAgentID(agent.ID).
		Save(ctx)
	require.NoError(t, err)

	msg, err := client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(conv.ID).
		SetDirection(message.DirectionOutbound).
		SetAgentID(agent.ID).
		SetBody("hello out there").
		SetStatus(message.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	payload, err := models.ToPayloadMap(models.OutboundJobPayload{
		MessageID:      msg.ID,
		ConversationID: conv.ID,
		ChannelID:      ch.ID,
		ContactID:      ct.ID,
	})
	require.NoError(t, err)

	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(job.QueueOutbound).
		SetPayload(payload).
		SetStatus(job.StatusRunning).
		SetAttempts(1).
		Save(ctx)
	require.NoError(t, err)

	return &outboundFixture{client: client, channel: ch, contact: ct, msg: msg, job: j}
}

func TestOutboundExecutor_Success(t *testing.T) {
	f := setupOutbound(t)
	adapter := &scriptedAdapter{
		kind: provider.KindWhatsApp,
		sendFunc: func(target provider.SendTarget, _ provider.OutboundMessage) (*provider.SendResult, error) {
			assert.Equal(t, "tok", target.AccessToken)
			assert.Equal(t, "15550001111", target.PhoneNumberID)
			return &provider.SendResult{ProviderMessageID: "wamid.sent-1"}, nil
		},
	}
	exec := NewOutboundExecutor(f.client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, services.NewMessageService(f.client, nil))

	require.NoError(t, exec.Execute(context.Background(), f.job))

	got, err := f.client.Message.Get(context.Background(), f.msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusSent, got.Status)
	require.NotNil(t, got.ProviderMessageID)
	assert.Equal(t, "wamid.sent-1", *got.ProviderMessageID)

	require.NotNil(t, adapter.lastSent)
	assert.Equal(t, f.contact.ProviderID, adapter.lastSent.RecipientID)
	assert.Equal(t, "hello out there", adapter.lastSent.Body)
}

func TestOutboundExecutor_PermanentFailure(t *testing.T) {
	f := setupOutbound(t)
	adapter := &scriptedAdapter{
		kind: provider.KindWhatsApp,
		sendFunc: func(provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error) {
			return nil, provider.NewPermanentError("131026", "recipient unreachable")
		},
	}
	exec := NewOutboundExecutor(f.client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, services.NewMessageService(f.client, nil))

	err := exec.Execute(context.Background(), f.job)
	require.Error(t, err)
	assert.True(t, isTerminal(err))

	got, err := f.client.Message.Get(context.Background(), f.msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, "131026", *got.ErrorCode)
}

func TestOutboundExecutor_RetryableKeepsPending(t *testing.T) {
	f := setupOutbound(t)
	adapter := &scriptedAdapter{
		kind: provider.KindWhatsApp,
		sendFunc: func(provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error) {
			return nil, provider.NewRetryableError("429", "rate limited")
		},
	}
	exec := NewOutboundExecutor(f.client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, services.NewMessageService(f.client, nil))

	err := exec.Execute(context.Background(), f.job)
	require.Error(t, err)
	assert.False(t, isTerminal(err))

	// Mid-budget retryable failure leaves the message deliverable.
	got, err := f.client.Message.Get(context.Background(), f.msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusPending, got.Status)
}

func TestOutboundExecutor_RetryableFinalAttemptFails(t *testing.T) {
	f := setupOutbound(t)
	_, err := f.client.Job.UpdateOneID(f.job.ID).SetAttempts(f.job.MaxAttempts).Save(context.Background())
	require.NoError(t, err)
	j, err := f.client.Job.Get(context.Background(), f.job.ID)
	require.NoError(t, err)

	adapter := &scriptedAdapter{
		kind: provider.KindWhatsApp,
		sendFunc: func(provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error) {
			return nil, provider.NewRetryableError("timeout", "request timed out")
		},
	}
	exec := NewOutboundExecutor(f.client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, services.NewMessageService(f.client, nil))

	require.Error(t, exec.Execute(context.Background(), j))

	got, err := f.client.Message.Get(context.Background(), f.msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusFailed, got.Status)
}

func TestOutboundExecutor_SkipsDeliveredMessage(t *testing.T) {
	f := setupOutbound(t)
	_, err := f.client.Message.UpdateOneID(f.msg.ID).
		SetStatus(message.StatusSent).
		SetProviderMessageID("wamid.already").
		Save(context.Background())
	require.NoError(t, err)

	adapter := &scriptedAdapter{
		kind: provider.KindWhatsApp,
		sendFunc: func(provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error) {
			t.Fatal("send must not be called for non-pending messages")
			return nil, nil
		},
	}
	exec := NewOutboundExecutor(f.client, map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: adapter,
	}, services.NewMessageService(f.client, nil))

	require.NoError(t, exec.Execute(context.Background(), f.job))
}

func TestWebhookExecutor_BadPayload(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	exec := NewWebhookExecutor(services.NewWebhookService(client, nil, services.NewMessageService(client, nil), nil))

	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(job.QueueWebhook).
		SetPayload(map[string]interface{}{"rawPayload": 42}).
		SetStatus(job.StatusRunning).
		Save(context.Background())
	require.NoError(t, err)

	execErr := exec.Execute(context.Background(), j)
	require.Error(t, execErr)
	assert.True(t, services.IsValidationError(execErr))
}

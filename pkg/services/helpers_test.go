package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/channel"
	"github.com/omniboxhq/omnibox/ent/contact"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/test/util"
	"github.com/stretchr/testify/require"
)

// fixture holds the rows every service test needs.
type fixture struct {
	Org     *ent.Organization
	Channel *ent.Channel
	Contact *ent.Contact
	Agent   *ent.User
	Agent2  *ent.User
}

func setupFixture(t *testing.T) (*ent.Client, *fixture) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	org, err := client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Acme Support").
		SetSlug("acme-" + uuid.New().String()[:8]).
		Save(ctx)
	require.NoError(t, err)

	ch, err := client.Channel.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetProvider(channel.ProviderWhatsapp).
		SetName("Main line").
		SetConfig(map[string]interface{}{
			"phone_number_id": "15550001111",
			"access_token":    "test-token",
		}).
		SetWebhookSecret("verify-me").
		SetAppSecret("app-secret").
		Save(ctx)
	require.NoError(t, err)

	ct, err := client.Contact.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetProvider(contact.ProviderWhatsapp).
		SetProviderID("491700001111").
		SetDisplayName("Ada").
		SetLastSeenAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	agent, err := client.User.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetEmail(uuid.New().String() + "@example.com").
		SetDisplayName("Agent One").
		Save(ctx)
	require.NoError(t, err)

	agent2, err := client.User.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(org.ID).
		SetEmail(uuid.New().String() + "@example.com").
		SetDisplayName("Agent Two").
		Save(ctx)
	require.NoError(t, err)

	return client, &fixture{Org: org, Channel: ch, Contact: ct, Agent: agent, Agent2: agent2}
}

// createConversation inserts a conversation in the given status.
func createConversation(t *testing.T, client *ent.Client, f *fixture, status conversation.Status, agentID string) *ent.Conversation {
	t.Helper()
	create := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(f.Org.ID).
		SetChannelID(f.Channel.ID).
		SetContactID(f.Contact.ID).
		SetStatus(status)
	if agentID != "" {
		create = create.SetAssignedAgentID(agentID)
	}
	conv, err := create.Save(context.Background())
	require.NoError(t, err)
	return conv
}

// memLocker is an in-process lock table standing in for the
// coordination store.
type memLocker struct {
	mu    sync.Mutex
	owner map[string]string
}

func newMemLocker() *memLocker {
	return &memLocker{owner: make(map[string]string)}
}

func (l *memLocker) TryLock(_ context.Context, key, owner string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, held := l.owner[key]; held && existing != owner {
		return false, nil
	}
	l.owner[key] = owner
	return true, nil
}

func (l *memLocker) Unlock(_ context.Context, key, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner[key] == owner {
		delete(l.owner, key)
	}
	return nil
}

// recordingPublisher captures event fan-out calls by name.
type recordingPublisher struct {
	mu    sync.Mutex
	calls []string
}

func (p *recordingPublisher) record(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, name)
}

func (p *recordingPublisher) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.calls))
	copy(out, p.calls)
	return out
}

func (p *recordingPublisher) Count(name string) int {
	n := 0
	for _, c := range p.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (p *recordingPublisher) ConversationNew(context.Context, *ent.Conversation)       { p.record("conversation.new") }
func (p *recordingPublisher) ConversationUpdated(context.Context, *ent.Conversation)   { p.record("conversation.updated") }
func (p *recordingPublisher) ConversationAssigned(context.Context, *ent.Conversation)  { p.record("conversation.assigned") }
func (p *recordingPublisher) ConversationReleased(context.Context, *ent.Conversation)  { p.record("conversation.released") }
func (p *recordingPublisher) ConversationCompleted(context.Context, *ent.Conversation) { p.record("conversation.completed") }
func (p *recordingPublisher) MessageNew(context.Context, string, *ent.Message)         { p.record("message.new") }
func (p *recordingPublisher) MessageUpdated(context.Context, *ent.Message)             { p.record("message.updated") }

// stubAdapter returns canned events instead of parsing real payloads.
type stubAdapter struct {
	kind   provider.Kind
	events []provider.Event
	err    error
}

func (a *stubAdapter) Kind() provider.Kind { return a.kind }

func (a *stubAdapter) ExtractAddressingID([]byte) (string, error) { return "", nil }

func (a *stubAdapter) ParseWebhook([]byte) ([]provider.Event, error) {
	return a.events, a.err
}

func (a *stubAdapter) Send(context.Context, provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error) {
	return &provider.SendResult{ProviderMessageID: "wamid.stub"}, nil
}

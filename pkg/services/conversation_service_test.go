package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/conversationevent"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationService_Accept(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusPending, "")

	got, err := svc.Accept(ctx, f.Org.ID, conv.ID, f.Agent.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusAssigned, got.Status)
	require.NotNil(t, got.AssignedAgentID)
	assert.Equal(t, f.Agent.ID, *got.AssignedAgentID)

	// The audit trail records who accepted.
	evt, err := client.ConversationEvent.Query().
		Where(
			conversationevent.ConversationIDEQ(conv.ID),
			conversationevent.EventTypeEQ(EventAccepted),
		).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, evt.ActorID)
	assert.Equal(t, f.Agent.ID, *evt.ActorID)

	// A second accept finds the conversation taken.
	_, err = svc.Accept(ctx, f.Org.ID, conv.ID, f.Agent2.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestConversationService_Accept_ExactlyOneWinner(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusPending, "")

	const racers = 8
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		agentID := f.Agent.ID
		if i%2 == 0 {
			agentID = f.Agent2.ID
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Accept(ctx, f.Org.ID, conv.ID, agentID); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	got, err := client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusAssigned, got.Status)
	require.NotNil(t, got.AssignedAgentID)
}

func TestConversationService_Accept_NotFound(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)

	_, err := svc.Accept(context.Background(), f.Org.ID, "00000000-0000-0000-0000-000000000000", f.Agent.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConversationService_Accept_WrongOrganization(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)

	conv := createConversation(t, client, f, conversation.StatusPending, "")

	_, err := svc.Accept(context.Background(), "other-org", conv.ID, f.Agent.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConversationService_Release(t *testing.T) {
	client, f := setupFixture(t)
	events := &recordingPublisher{}
	svc := NewConversationService(client, newMemLocker(), events)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	got, err := svc.Release(ctx, f.Org.ID, conv.ID, f.Agent.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusPending, got.Status)
	assert.Nil(t, got.AssignedAgentID)
	assert.Equal(t, 1, events.Count("conversation.released"))
}

func TestConversationService_Release_OtherAgent(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	_, err := svc.Release(ctx, f.Org.ID, conv.ID, f.Agent2.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrForbidden))

	// Unchanged.
	got, err := client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusAssigned, got.Status)
}

func TestConversationService_Release_NotAssigned(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)

	conv := createConversation(t, client, f, conversation.StatusPending, "")

	_, err := svc.Release(context.Background(), f.Org.ID, conv.ID, f.Agent.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestConversationService_Complete(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)

	got, err := svc.Complete(ctx, f.Org.ID, conv.ID, f.Agent.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusCompleted, got.Status)
	assert.Nil(t, got.AssignedAgentID)

	evt, err := client.ConversationEvent.Query().
		Where(
			conversationevent.ConversationIDEQ(conv.ID),
			conversationevent.EventTypeEQ(EventCompleted),
		).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, evt.ActorID)
	assert.Equal(t, f.Agent.ID, *evt.ActorID)
}

func TestConversationService_ReleaseByAgent(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	// Second contact so two open conversations can coexist.
	ct2, err := client.Contact.Create().
		SetID("contact-2-" + f.Contact.ID[:8]).
		SetOrganizationID(f.Org.ID).
		SetProvider(f.Contact.Provider).
		SetProviderID("491700002222").
		Save(ctx)
	require.NoError(t, err)

	conv1 := createConversation(t, client, f, conversation.StatusAssigned, f.Agent.ID)
	conv2, err := client.Conversation.Create().
		SetID("conv-2-" + conv1.ID[:8]).
		SetOrganizationID(f.Org.ID).
		SetChannelID(f.Channel.ID).
		SetContactID(ct2.ID).
		SetStatus(conversation.StatusAssigned).
		SetAssignedAgentID(f.Agent.ID).
		Save(ctx)
	require.NoError(t, err)

	// A conversation held by a different agent stays put.
	ct3, err := client.Contact.Create().
		SetID("contact-3-" + f.Contact.ID[:8]).
		SetOrganizationID(f.Org.ID).
		SetProvider(f.Contact.Provider).
		SetProviderID("491700003333").
		Save(ctx)
	require.NoError(t, err)
	conv3, err := client.Conversation.Create().
		SetID("conv-3-" + conv1.ID[:8]).
		SetOrganizationID(f.Org.ID).
		SetChannelID(f.Channel.ID).
		SetContactID(ct3.ID).
		SetStatus(conversation.StatusAssigned).
		SetAssignedAgentID(f.Agent2.ID).
		Save(ctx)
	require.NoError(t, err)

	released, err := svc.ReleaseByAgent(ctx, f.Agent.ID)
	require.NoError(t, err)
	assert.Len(t, released, 2)

	for _, id := range []string{conv1.ID, conv2.ID} {
		got, err := client.Conversation.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, conversation.StatusPending, got.Status)
		assert.Nil(t, got.AssignedAgentID)

		n, err := client.ConversationEvent.Query().
			Where(
				conversationevent.ConversationIDEQ(id),
				conversationevent.EventTypeEQ(EventAgentDisconnected),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}

	got3, err := client.Conversation.Get(ctx, conv3.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusAssigned, got3.Status)
}

func TestConversationService_List(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusPending, "")

	page, err := svc.List(ctx, models.ListConversationsRequest{
		OrganizationID: f.Org.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Conversations, 1)
	assert.Equal(t, conv.ID, page.Conversations[0].ID)
	require.NotNil(t, page.Conversations[0].Contact)
	assert.Equal(t, f.Contact.ID, page.Conversations[0].Contact.ID)

	// Status filter.
	page, err = svc.List(ctx, models.ListConversationsRequest{
		OrganizationID: f.Org.ID,
		Status:         "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)

	// Contact search by display name.
	page, err = svc.List(ctx, models.ListConversationsRequest{
		OrganizationID: f.Org.ID,
		Search:         "ada",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	page, err = svc.List(ctx, models.ListConversationsRequest{
		OrganizationID: f.Org.ID,
		Search:         "nobody",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)

	// Other organizations see nothing.
	page, err = svc.List(ctx, models.ListConversationsRequest{
		OrganizationID: "other-org",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

func TestConversationService_List_InvalidStatus(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)

	_, err := svc.List(context.Background(), models.ListConversationsRequest{
		OrganizationID: f.Org.ID,
		Status:         "archived",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestConversationService_ListEvents(t *testing.T) {
	client, f := setupFixture(t)
	svc := NewConversationService(client, newMemLocker(), nil)
	ctx := context.Background()

	conv := createConversation(t, client, f, conversation.StatusPending, "")

	_, err := svc.Accept(ctx, f.Org.ID, conv.ID, f.Agent.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, f.Org.ID, conv.ID, f.Agent.ID)
	require.NoError(t, err)

	evts, total, err := svc.ListEvents(ctx, f.Org.ID, conv.ID, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, evts, 2)

	// Scoping: the audit trail is invisible outside the organization.
	_, _, err = svc.ListEvents(ctx, "other-org", conv.ID, 1, 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

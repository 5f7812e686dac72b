package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/agentsession"
	"github.com/omniboxhq/omnibox/pkg/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniboxhq/omnibox/test/util"
)

type fakeSessionCache struct {
	mu      sync.Mutex
	puts    map[string]coord.CachedSession
	deletes []string
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{puts: make(map[string]coord.CachedSession)}
}

func (f *fakeSessionCache) PutSession(_ context.Context, agentID string, s coord.CachedSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts[agentID] = s
	return nil
}

func (f *fakeSessionCache) DeleteSession(_ context.Context, agentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, agentID)
	return nil
}

type fakeReleaser struct {
	mu     sync.Mutex
	agents []string
}

func (f *fakeReleaser) ReleaseByAgent(_ context.Context, agentID string) ([]*ent.Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents = append(f.agents, agentID)
	return nil, nil
}

type fakePresencePublisher struct {
	mu       sync.Mutex
	statuses []string
}

func (f *fakePresencePublisher) AgentStatusChanged(_ context.Context, _, agentID, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, agentID+":"+status)
}

func setupPresence(t *testing.T) (*ent.Client, *Presence, *fakeSessionCache, *fakeReleaser, *fakePresencePublisher) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cache := newFakeSessionCache()
	releaser := &fakeReleaser{}
	publisher := &fakePresencePublisher{}
	p := NewPresence(client, cache, releaser, publisher, "instance-test")
	return client, p, cache, releaser, publisher
}

func TestPresence_ConnectedRecordsSession(t *testing.T) {
	client, p, cache, _, publisher := setupPresence(t)
	ctx := context.Background()

	connID := uuid.New().String()
	p.Connected(ctx, connID, Identity{AgentID: "agent-1", OrganizationID: "org-1"})

	s, err := client.AgentSession.Query().
		Where(agentsession.ConnectionIDEQ(connID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", s.AgentID)
	assert.Equal(t, "org-1", s.OrganizationID)
	assert.Equal(t, agentsession.StatusOnline, s.Status)
	assert.Equal(t, "instance-test", s.InstanceID)

	cached, ok := cache.puts["agent-1"]
	require.True(t, ok)
	assert.Equal(t, connID, cached.ConnectionID)
	assert.Equal(t, "online", cached.Status)

	assert.Equal(t, []string{"agent-1:online"}, publisher.statuses)
}

func TestPresence_DisconnectedLastConnectionReleases(t *testing.T) {
	client, p, cache, releaser, publisher := setupPresence(t)
	ctx := context.Background()

	connID := uuid.New().String()
	p.Connected(ctx, connID, Identity{AgentID: "agent-1", OrganizationID: "org-1"})
	p.Disconnected(ctx, connID, Identity{AgentID: "agent-1", OrganizationID: "org-1"})

	count, err := client.AgentSession.Query().
		Where(agentsession.AgentIDEQ("agent-1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.Equal(t, []string{"agent-1"}, cache.deletes)
	assert.Equal(t, []string{"agent-1"}, releaser.agents)
	assert.Equal(t, []string{"agent-1:online", "agent-1:offline"}, publisher.statuses)
}

func TestPresence_DisconnectedKeepsMultiTabOnline(t *testing.T) {
	client, p, cache, releaser, publisher := setupPresence(t)
	ctx := context.Background()

	id := Identity{AgentID: "agent-1", OrganizationID: "org-1"}
	conn1 := uuid.New().String()
	conn2 := uuid.New().String()
	p.Connected(ctx, conn1, id)
	p.Connected(ctx, conn2, id)

	// Closing one tab must not dump the agent's conversations.
	p.Disconnected(ctx, conn1, id)

	count, err := client.AgentSession.Query().
		Where(agentsession.AgentIDEQ("agent-1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Empty(t, cache.deletes)
	assert.Empty(t, releaser.agents)
	assert.NotContains(t, publisher.statuses, "agent-1:offline")
}

func TestPresence_StatusChanged(t *testing.T) {
	client, p, cache, _, publisher := setupPresence(t)
	ctx := context.Background()

	id := Identity{AgentID: "agent-1", OrganizationID: "org-1"}
	connID := uuid.New().String()
	p.Connected(ctx, connID, id)
	p.StatusChanged(ctx, connID, id, "away")

	s, err := client.AgentSession.Query().
		Where(agentsession.ConnectionIDEQ(connID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusAway, s.Status)

	assert.Equal(t, "away", cache.puts["agent-1"].Status)
	assert.Equal(t, []string{"agent-1:online", "agent-1:away"}, publisher.statuses)
}

func TestReapInstanceSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mk := func(agentID, instanceID string) {
		err := client.AgentSession.Create().
			SetID(uuid.New().String()).
			SetAgentID(agentID).
			SetOrganizationID("org-1").
			SetConnectionID(uuid.New().String()).
			SetStatus(agentsession.StatusOnline).
			SetInstanceID(instanceID).
			SetConnectedAt(time.Now()).
			SetLastSeenAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)
	}
	mk("agent-1", "instance-a")
	mk("agent-2", "instance-a")
	mk("agent-3", "instance-b")

	require.NoError(t, ReapInstanceSessions(ctx, client, "instance-a"))

	remaining, err := client.AgentSession.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "agent-3", remaining[0].AgentID)
}

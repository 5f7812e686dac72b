package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/agentsession"
	"github.com/omniboxhq/omnibox/pkg/coord"
)

// ConversationReleaser returns an agent's assigned conversations to the
// pending pool. Implemented by the conversation service.
type ConversationReleaser interface {
	ReleaseByAgent(ctx context.Context, agentID string) ([]*ent.Conversation, error)
}

// SessionCache is the shared presence store. Implemented by the
// coordination client.
type SessionCache interface {
	PutSession(ctx context.Context, agentID string, s coord.CachedSession) error
	DeleteSession(ctx context.Context, agentID string) error
}

// PresencePublisher announces agent presence changes.
type PresencePublisher interface {
	AgentStatusChanged(ctx context.Context, orgID, agentID, status string)
}

// Presence implements Lifecycle. It records agent sessions in the
// database and the coordination store, and on final disconnect releases
// the agent's conversations so other agents can pick them up.
type Presence struct {
	client     *ent.Client
	coord      SessionCache
	releaser   ConversationReleaser
	publisher  PresencePublisher
	instanceID string
}

// NewPresence creates a Presence tracker. publisher may be nil.
func NewPresence(client *ent.Client, coordClient SessionCache, releaser ConversationReleaser, publisher PresencePublisher, instanceID string) *Presence {
	return &Presence{
		client:     client,
		coord:      coordClient,
		releaser:   releaser,
		publisher:  publisher,
		instanceID: instanceID,
	}
}

// Connected records a new agent session and announces the agent online.
func (p *Presence) Connected(ctx context.Context, connID string, id Identity) {
	now := time.Now()
	err := p.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetAgentID(id.AgentID).
		SetOrganizationID(id.OrganizationID).
		SetConnectionID(connID).
		SetStatus(agentsession.StatusOnline).
		SetInstanceID(p.instanceID).
		SetConnectedAt(now).
		SetLastSeenAt(now).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to record agent session",
			"agent_id", id.AgentID, "connection_id", connID, "error", err)
	}

	if err := p.coord.PutSession(ctx, id.AgentID, coord.CachedSession{
		AgentID:        id.AgentID,
		OrganizationID: id.OrganizationID,
		ConnectionID:   connID,
		Status:         string(agentsession.StatusOnline),
		InstanceID:     p.instanceID,
	}); err != nil {
		slog.Warn("Failed to cache agent session",
			"agent_id", id.AgentID, "error", err)
	}

	if p.publisher != nil {
		p.publisher.AgentStatusChanged(ctx, id.OrganizationID, id.AgentID, string(agentsession.StatusOnline))
	}
}

// Disconnected removes the session. When it was the agent's last open
// connection, their assigned conversations return to the pending pool
// immediately and the agent is announced offline.
func (p *Presence) Disconnected(ctx context.Context, connID string, id Identity) {
	if _, err := p.client.AgentSession.Delete().
		Where(agentsession.ConnectionIDEQ(connID)).
		Exec(ctx); err != nil {
		slog.Error("Failed to remove agent session",
			"connection_id", connID, "error", err)
	}

	remaining, err := p.client.AgentSession.Query().
		Where(agentsession.AgentIDEQ(id.AgentID)).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to count remaining agent sessions",
			"agent_id", id.AgentID, "error", err)
		return
	}
	if remaining > 0 {
		// Another tab or device is still connected.
		return
	}

	if err := p.coord.DeleteSession(ctx, id.AgentID); err != nil {
		slog.Warn("Failed to drop cached agent session",
			"agent_id", id.AgentID, "error", err)
	}

	released, err := p.releaser.ReleaseByAgent(ctx, id.AgentID)
	if err != nil {
		slog.Error("Failed to release conversations on disconnect",
			"agent_id", id.AgentID, "error", err)
	} else if len(released) > 0 {
		slog.Info("Released conversations on disconnect",
			"agent_id", id.AgentID, "count", len(released))
	}

	if p.publisher != nil {
		p.publisher.AgentStatusChanged(ctx, id.OrganizationID, id.AgentID, string(agentsession.StatusOffline))
	}
}

// StatusChanged records a client-initiated presence change (online or
// away) and announces it.
func (p *Presence) StatusChanged(ctx context.Context, connID string, id Identity, status string) {
	if _, err := p.client.AgentSession.Update().
		Where(agentsession.ConnectionIDEQ(connID)).
		SetStatus(agentsession.Status(status)).
		SetLastSeenAt(time.Now()).
		Save(ctx); err != nil {
		slog.Error("Failed to update agent session status",
			"connection_id", connID, "status", status, "error", err)
		return
	}

	if err := p.coord.PutSession(ctx, id.AgentID, coord.CachedSession{
		AgentID:        id.AgentID,
		OrganizationID: id.OrganizationID,
		ConnectionID:   connID,
		Status:         status,
		InstanceID:     p.instanceID,
	}); err != nil {
		slog.Warn("Failed to refresh cached agent session",
			"agent_id", id.AgentID, "error", err)
	}

	if p.publisher != nil {
		p.publisher.AgentStatusChanged(ctx, id.OrganizationID, id.AgentID, status)
	}
}

// ReapInstanceSessions removes agent session rows left behind by a
// previous run of this instance. Called once during startup; sockets
// from the old process are gone, their rows must not keep agents
// looking online.
func ReapInstanceSessions(ctx context.Context, client *ent.Client, instanceID string) error {
	n, err := client.AgentSession.Delete().
		Where(agentsession.InstanceIDEQ(instanceID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reap stale agent sessions: %w", err)
	}
	if n > 0 {
		slog.Warn("Reaped stale agent sessions from previous run",
			"instance_id", instanceID, "count", n)
	}
	return nil
}

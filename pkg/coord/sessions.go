package coord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when no cached session exists for an agent.
var ErrSessionNotFound = errors.New("session not found")

// CachedSession is the presence blob shared between instances so any
// replica can answer "is this agent online" without a database read.
type CachedSession struct {
	AgentID        string `json:"agentId"`
	OrganizationID string `json:"organizationId"`
	ConnectionID   string `json:"connectionId"`
	Status         string `json:"status"`
	InstanceID     string `json:"instanceId"`
}

func sessionKey(agentID string) string {
	return "session:" + agentID
}

// PutSession stores the session blob with the configured TTL. Called on
// connect and refreshed on activity and status changes.
func (c *Client) PutSession(ctx context.Context, agentID string, s CachedSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := c.rdb.SetEx(ctx, sessionKey(agentID), data, c.cfg.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSession loads a cached session by agent ID.
func (c *Client) GetSession(ctx context.Context, agentID string) (*CachedSession, error) {
	data, err := c.rdb.Get(ctx, sessionKey(agentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s CachedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// DeleteSession removes the session blob on disconnect.
func (c *Client) DeleteSession(ctx context.Context, agentID string) error {
	if err := c.rdb.Del(ctx, sessionKey(agentID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Package coord provides the Redis-backed coordination store: distributed
// locks for conversation accept, cached agent sessions, and the pub/sub
// channel that mirrors realtime events across instances.
package coord

import (
	"context"
	"fmt"

	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis connection shared by the coordination helpers.
type Client struct {
	rdb *redis.Client
	cfg config.CoordConfig
}

// NewClient connects to the coordination store and verifies the connection.
func NewClient(ctx context.Context, cfg config.CoordConfig) (*Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid coordination store URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping coordination store: %w", err)
	}

	return &Client{rdb: rdb, cfg: cfg}, nil
}

// NewClientFromRedis wraps an existing Redis client (useful for testing).
func NewClientFromRedis(rdb *redis.Client, cfg config.CoordConfig) *Client {
	return &Client{rdb: rdb, cfg: cfg}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping checks connectivity for health reporting.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

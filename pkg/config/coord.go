package config

import (
	"fmt"
	"time"
)

// CoordConfig holds the Redis coordination store settings: distributed
// locks, session blobs, and the cross-instance event channel.
type CoordConfig struct {
	// URL is a redis:// connection string.
	URL string

	// LockTTL is the expiry on conversation accept locks. Short on
	// purpose; the lock only needs to outlive one accept attempt.
	LockTTL time.Duration

	// SessionTTL is the expiry on cached agent session blobs.
	SessionTTL time.Duration

	// EventChannel is the pub/sub channel for mirrored realtime events.
	EventChannel string
}

func loadCoordFromEnv() CoordConfig {
	return CoordConfig{
		URL:          getEnv("COORD_URL", "redis://localhost:6379/0"),
		LockTTL:      getDurationEnv("COORD_LOCK_TTL", 5*time.Second),
		SessionTTL:   getDurationEnv("COORD_SESSION_TTL", 24*time.Hour),
		EventChannel: getEnv("COORD_EVENT_CHANNEL", "omnibox:events"),
	}
}

// Validate checks coordination settings.
func (c CoordConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("COORD_URL is required")
	}
	if c.LockTTL <= 0 {
		return fmt.Errorf("lock TTL must be positive, got %s", c.LockTTL)
	}
	return nil
}

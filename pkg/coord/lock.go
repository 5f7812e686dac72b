package coord

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only when the caller still owns it, so
// an expired lock re-acquired by another instance is never released by
// the original holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`)

// ConversationLockKey returns the accept-lock key for a conversation.
func ConversationLockKey(conversationID string) string {
	return "lock:conversation:" + conversationID
}

// TryLock attempts to acquire the key for owner with the configured TTL.
// It returns false without error when another owner holds the lock.
func (c *Client) TryLock(ctx context.Context, key, owner string) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, key, owner, c.cfg.LockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	return ok, nil
}

// Unlock releases the key if owner still holds it. Releasing a lock that
// expired or changed hands is a no-op, not an error.
func (c *Client) Unlock(ctx context.Context, key, owner string) error {
	if err := releaseScript.Run(ctx, c.rdb, []string{key}, owner).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}
	return nil
}

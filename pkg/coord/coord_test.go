package coord

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient provisions a Redis-backed coordination client. In CI
// (when CI_REDIS_URL is set) it connects to an external service
// container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	url := os.Getenv("CI_REDIS_URL")
	if url == "" {
		t.Log("Using testcontainers for Redis")
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(container); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		host, err := container.Host(ctx)
		require.NoError(t, err)
		port, err := container.MappedPort(ctx, "6379/tcp")
		require.NoError(t, err)
		url = "redis://" + host + ":" + port.Port() + "/0"
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	require.NoError(t, rdb.Ping(ctx).Err())

	cfg := config.CoordConfig{
		URL:          url,
		LockTTL:      2 * time.Second,
		SessionTTL:   time.Minute,
		EventChannel: "test:events",
	}

	client := NewClientFromRedis(rdb, cfg)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestLock_MutualExclusion(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	key := ConversationLockKey("conv-1")

	ok, err := client.TryLock(ctx, key, "instance-a")
	require.NoError(t, err)
	assert.True(t, ok)

	// A second owner cannot take the held lock.
	ok, err = client.TryLock(ctx, key, "instance-b")
	require.NoError(t, err)
	assert.False(t, ok)

	// Releasing with the wrong owner is a no-op.
	require.NoError(t, client.Unlock(ctx, key, "instance-b"))
	ok, err = client.TryLock(ctx, key, "instance-b")
	require.NoError(t, err)
	assert.False(t, ok)

	// The real owner releases and the lock becomes available.
	require.NoError(t, client.Unlock(ctx, key, "instance-a"))
	ok, err = client.TryLock(ctx, key, "instance-b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLock_Expires(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	key := ConversationLockKey("conv-ttl")

	ok, err := client.TryLock(ctx, key, "instance-a")
	require.NoError(t, err)
	require.True(t, ok)

	// The TTL bounds how long a crashed holder can block others.
	assert.Eventually(t, func() bool {
		ok, err := client.TryLock(ctx, key, "instance-b")
		return err == nil && ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	session := CachedSession{
		AgentID:        "agent-1",
		OrganizationID: "org-1",
		ConnectionID:   "conn-1",
		Status:         "online",
		InstanceID:     "pod-a",
	}

	require.NoError(t, client.PutSession(ctx, "agent-1", session))

	got, err := client.GetSession(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, session, *got)

	require.NoError(t, client.DeleteSession(ctx, "agent-1"))

	_, err = client.GetSession(ctx, "agent-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPubSub_Delivery(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := client.SubscribeEvents(ctx)

	// Redis pub/sub drops messages published before the subscription is
	// live; retry until one arrives.
	done := make(chan []byte, 1)
	go func() {
		if msg, ok := <-events; ok {
			done <- msg
		}
	}()

	require.Eventually(t, func() bool {
		require.NoError(t, client.PublishEvent(ctx, []byte(`{"type":"ping"}`)))
		select {
		case msg := <-done:
			assert.JSONEq(t, `{"type":"ping"}`, string(msg))
			return true
		default:
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)
}

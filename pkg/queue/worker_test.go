package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/services"
	"github.com/omniboxhq/omnibox/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WebhookWorkers = 2
	cfg.OutboundWorkers = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.JobTimeout = 5 * time.Second
	return &cfg
}

func enqueueJob(t *testing.T, client *ent.Client, queue job.Queue, runAt time.Time) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(queue).
		SetPayload(map[string]interface{}{"channelId": "ch-1"}).
		SetStatus(job.StatusPending).
		SetRunAt(runAt).
		Save(context.Background())
	require.NoError(t, err)
	return j
}

// funcExecutor adapts a function to the Executor interface.
type funcExecutor func(ctx context.Context, j *ent.Job) error

func (f funcExecutor) Execute(ctx context.Context, j *ent.Job) error { return f(ctx, j) }

func TestWorker_ClaimNextJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "instance-1", client, cfg, job.QueueWebhook, cfg.WebhookBackoffBase, nil)
	ctx := context.Background()

	j := enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, j.ID, claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "instance-1", *claimed.ClaimedBy)
	assert.Equal(t, 1, claimed.Attempts)

	// Nothing else to claim.
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_ClaimNextJob_RespectsRunAt(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "instance-1", client, cfg, job.QueueWebhook, cfg.WebhookBackoffBase, nil)
	ctx := context.Background()

	// Scheduled in the future; not runnable yet.
	enqueueJob(t, client, job.QueueWebhook, time.Now().Add(time.Hour))

	_, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_ClaimNextJob_IgnoresOtherQueue(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "instance-1", client, cfg, job.QueueOutbound, cfg.OutboundBackoffBase, nil)
	ctx := context.Background()

	enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))

	_, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_FinishJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := testQueueConfig()
	w := NewWorker("w-0", "instance-1", client, cfg, job.QueueWebhook, cfg.WebhookBackoffBase, nil)
	ctx := context.Background()

	t.Run("success completes", func(t *testing.T) {
		j := enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, claimed, nil))
		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, got.Status)
	})

	t.Run("retryable error reschedules", func(t *testing.T) {
		j := enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)

		before := time.Now()
		require.NoError(t, w.finishJob(ctx, claimed, errors.New("connection reset")))

		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, got.Status)
		assert.Nil(t, got.ClaimedBy)
		require.NotNil(t, got.LastError)
		assert.Contains(t, *got.LastError, "connection reset")
		// First retry waits at least the base backoff.
		assert.True(t, got.RunAt.After(before.Add(cfg.WebhookBackoffBase/2)))
	})

	t.Run("terminal error dead-letters", func(t *testing.T) {
		j := enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))
		claimed, err := w.claimNextJob(ctx)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, claimed, services.NewValidationError("payload", "garbage")))
		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, got.Status)
	})

	t.Run("attempt budget exhausted dead-letters", func(t *testing.T) {
		j := enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))
		_, err := client.Job.UpdateOneID(j.ID).SetAttempts(cfg.MaxAttempts).Save(ctx)
		require.NoError(t, err)
		claimed, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)

		require.NoError(t, w.finishJob(ctx, claimed, errors.New("still flaky")))
		got, err := client.Job.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusFailed, got.Status)
		require.NotNil(t, got.LastError)
	})
}

func TestWorkerPool_ProcessesJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cfg := testQueueConfig()
	ctx := context.Background()

	var processed atomic.Int32
	pool := NewWebhookPool("instance-1", client, cfg, funcExecutor(func(context.Context, *ent.Job) error {
		processed.Add(1)
		return nil
	}))

	for i := 0; i < 5; i++ {
		enqueueJob(t, client, job.QueueWebhook, time.Now().Add(-time.Second))
	}

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return processed.Load() == 5
	}, 10*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		n, err := client.Job.Query().
			Where(job.QueueEQ(job.QueueWebhook), job.StatusEQ(job.StatusCompleted)).
			Count(ctx)
		return err == nil && n == 5
	}, 10*time.Second, 50*time.Millisecond)

	// Exactly once per job despite concurrent workers.
	assert.Equal(t, int32(5), processed.Load())
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", services.NewValidationError("f", "bad"), true},
		{"conflict", services.ErrConflict, true},
		{"not found", services.ErrNotFound, true},
		{"forbidden", services.ErrForbidden, true},
		{"permanent provider", provider.NewPermanentError("131026", "unreachable"), true},
		{"retryable provider", provider.NewRetryableError("429", "rate limited"), false},
		{"plain error", errors.New("timeout"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTerminal(tt.err))
		})
	}
}

func TestRetryDelay(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("w-0", "i-1", nil, cfg, job.QueueOutbound, 2*time.Second, nil)

	assert.Equal(t, 2*time.Second, w.retryDelay(1))
	assert.Equal(t, 4*time.Second, w.retryDelay(2))
	assert.Equal(t, 8*time.Second, w.retryDelay(3))
	assert.Equal(t, 2*time.Second, w.retryDelay(0))
}

func TestRequeueStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mine := enqueueJob(t, client, job.QueueWebhook, time.Now())
	_, err := client.Job.UpdateOneID(mine.ID).
		SetStatus(job.StatusRunning).
		SetClaimedBy("instance-1").
		Save(ctx)
	require.NoError(t, err)

	theirs := enqueueJob(t, client, job.QueueWebhook, time.Now())
	_, err = client.Job.UpdateOneID(theirs.ID).
		SetStatus(job.StatusRunning).
		SetClaimedBy("instance-2").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RequeueStartupOrphans(ctx, client, "instance-1"))

	got, err := client.Job.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
	assert.Nil(t, got.ClaimedBy)

	// Another instance's jobs are left alone.
	got, err = client.Job.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, got.Status)
}

func TestRequeueStaleJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	stale := enqueueJob(t, client, job.QueueOutbound, time.Now())
	_, err := client.Job.UpdateOneID(stale.ID).
		SetStatus(job.StatusRunning).
		SetClaimedBy("gone-instance").
		SetUpdatedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	fresh := enqueueJob(t, client, job.QueueOutbound, time.Now())
	_, err = client.Job.UpdateOneID(fresh.ID).
		SetStatus(job.StatusRunning).
		SetClaimedBy("live-instance").
		Save(ctx)
	require.NoError(t, err)

	n, err := RequeueStaleJobs(ctx, client, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := client.Job.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)

	got, err = client.Job.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, got.Status)
}

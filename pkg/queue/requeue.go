package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/job"
)

// RequeueStartupOrphans returns jobs this instance was running when it
// previously crashed back to the pending pool. Called once during
// startup, before the worker pools begin processing. Safe because job
// handlers are idempotent: webhook processing dedups on provider
// message ids and the outbound executor skips non-pending messages.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, instanceID string) error {
	n, err := client.Job.Update().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.ClaimedByEQ(instanceID),
		).
		SetStatus(job.StatusPending).
		ClearClaimedBy().
		SetRunAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued orphaned jobs from previous run",
			"instance_id", instanceID, "count", n)
	}
	return nil
}

// RequeueStaleJobs returns jobs stuck in running longer than threshold
// to the pending pool, regardless of owner. Covers replicas that died
// without restarting; every instance may run this periodically since
// the update is idempotent.
func RequeueStaleJobs(ctx context.Context, client *ent.Client, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)
	n, err := client.Job.Update().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.UpdatedAtLT(cutoff),
		).
		SetStatus(job.StatusPending).
		ClearClaimedBy().
		SetRunAt(time.Now()).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue stale jobs: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued stale running jobs", "count", n)
	}
	return n, nil
}

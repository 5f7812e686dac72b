// Package queue provides the database-backed job queues and their
// worker pools. Two queues exist: webhook (inbound payload processing)
// and outbound (provider delivery). Jobs are claimed with FOR UPDATE
// SKIP LOCKED so replicas share a queue without double-processing.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/omniboxhq/omnibox/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no runnable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// Executor processes one claimed job. The worker handles claiming,
// retry scheduling, and the dead-letter transition; the executor only
// reports success or failure. Returned errors are classified: terminal
// errors (validation, conflict, permanent provider failures) move the
// job straight to failed, anything else retries with backoff.
type Executor interface {
	Execute(ctx context.Context, j *ent.Job) error
}

// PoolHealth contains health information for one worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	Queue         string         `json:"queue"`
	InstanceID    string         `json:"instance_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	DeadLettered  int            `json:"dead_lettered"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

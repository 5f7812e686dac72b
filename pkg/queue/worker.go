package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs on
// one queue.
type Worker struct {
	id          string
	instanceID  string
	client      *ent.Client
	config      *config.QueueConfig
	queue       job.Queue
	backoffBase time.Duration
	executor    Executor
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, instanceID string, client *ent.Client, cfg *config.QueueConfig, queue job.Queue, backoffBase time.Duration, executor Executor) *Worker {
	return &Worker{
		id:           id,
		instanceID:   instanceID,
		client:       client,
		config:       cfg,
		queue:        queue,
		backoffBase:  backoffBase,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "instance_id", w.instanceID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next runnable job and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	j, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "queue", w.queue, "worker_id", w.id)
	log.Debug("Job claimed", "attempt", j.Attempts)

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	execErr := w.executor.Execute(jobCtx, j)
	cancel()

	// The job context may be cancelled by now; finish bookkeeping on a
	// background context so results are never lost to shutdown.
	if err := w.finishJob(context.Background(), j, execErr); err != nil {
		log.Error("Failed to record job outcome", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextJob atomically claims the next pending job using
// FOR UPDATE SKIP LOCKED. Jobs are ordered by run_at for FIFO
// processing with backoff-delayed retries slotting in naturally.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(
			job.QueueEQ(w.queue),
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldRunAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	j, err = j.Update().
		SetStatus(job.StatusRunning).
		SetClaimedBy(w.instanceID).
		AddAttempts(1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// finishJob records the execution outcome: completed, retry with
// backoff, or dead-lettered as failed.
func (w *Worker) finishJob(ctx context.Context, j *ent.Job, execErr error) error {
	if execErr == nil {
		return w.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusCompleted).
			SetUpdatedAt(time.Now()).
			ClearLastError().
			Exec(ctx)
	}

	log := slog.With("job_id", j.ID, "queue", w.queue, "attempt", j.Attempts)

	if isTerminal(execErr) || j.Attempts >= j.MaxAttempts {
		log.Warn("Job dead-lettered", "error", execErr)
		return w.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusFailed).
			SetLastError(execErr.Error()).
			SetUpdatedAt(time.Now()).
			Exec(ctx)
	}

	delay := w.retryDelay(j.Attempts)
	log.Info("Job scheduled for retry", "delay", delay, "error", execErr)
	return w.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusPending).
		SetLastError(execErr.Error()).
		SetRunAt(time.Now().Add(delay)).
		ClearClaimedBy().
		SetUpdatedAt(time.Now()).
		Exec(ctx)
}

// isTerminal reports whether the error can never succeed on retry.
func isTerminal(err error) bool {
	if services.IsValidationError(err) {
		return true
	}
	if errors.Is(err, services.ErrConflict) ||
		errors.Is(err, services.ErrNotFound) ||
		errors.Is(err, services.ErrForbidden) {
		return true
	}
	var provErr *provider.Error
	if errors.As(err, &provErr) {
		return !provErr.Retryable
	}
	return false
}

// retryDelay computes the exponential backoff for the given attempt
// count: base * 2^(attempt-1).
func (w *Worker) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return w.backoffBase * time.Duration(1<<(attempt-1))
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

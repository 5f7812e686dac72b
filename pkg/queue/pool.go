package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/pkg/config"
)

// WorkerPool manages the workers for one queue.
type WorkerPool struct {
	instanceID string
	client     *ent.Client
	config     *config.QueueConfig
	queue      job.Queue
	executor   Executor
	workers    []*Worker
	started    bool
	mu         sync.Mutex
}

// NewWebhookPool creates the pool processing inbound webhook jobs.
func NewWebhookPool(instanceID string, client *ent.Client, cfg *config.QueueConfig, executor Executor) *WorkerPool {
	return newPool(instanceID, client, cfg, job.QueueWebhook, executor)
}

// NewOutboundPool creates the pool delivering outbound messages.
func NewOutboundPool(instanceID string, client *ent.Client, cfg *config.QueueConfig, executor Executor) *WorkerPool {
	return newPool(instanceID, client, cfg, job.QueueOutbound, executor)
}

func newPool(instanceID string, client *ent.Client, cfg *config.QueueConfig, queue job.Queue, executor Executor) *WorkerPool {
	return &WorkerPool{
		instanceID: instanceID,
		client:     client,
		config:     cfg,
		queue:      queue,
		executor:   executor,
	}
}

func (p *WorkerPool) workerCount() int {
	if p.queue == job.QueueOutbound {
		return p.config.OutboundWorkers
	}
	return p.config.WebhookWorkers
}

// Start spawns the worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call",
			"queue", p.queue, "instance_id", p.instanceID)
		return nil
	}
	p.started = true

	count := p.workerCount()
	backoff := p.config.WebhookBackoffBase
	if p.queue == job.QueueOutbound {
		backoff = p.config.OutboundBackoffBase
	}

	slog.Info("Starting worker pool",
		"queue", p.queue, "instance_id", p.instanceID, "worker_count", count)

	for i := 0; i < count; i++ {
		workerID := fmt.Sprintf("%s-%s-worker-%d", p.instanceID, p.queue, i)
		worker := NewWorker(workerID, p.instanceID, p.client, p.config, p.queue, backoff, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool", "queue", p.queue)
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Worker pool stopped", "queue", p.queue)
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(job.QueueEQ(p.queue), job.StatusEQ(job.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"queue", p.queue, "error", errQ)
	}

	deadLettered, errD := p.client.Job.Query().
		Where(job.QueueEQ(p.queue), job.StatusEQ(job.StatusFailed)).
		Count(ctx)
	if errD != nil {
		slog.Error("Failed to query dead-letter depth for health check",
			"queue", p.queue, "error", errD)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errD == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errD != nil {
		dbError = fmt.Sprintf("dead-letter query failed: %v", errD)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		Queue:         string(p.queue),
		InstanceID:    p.instanceID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		DeadLettered:  deadLettered,
		WorkerStats:   workerStats,
	}
}

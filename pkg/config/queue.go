package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// QueueConfig contains worker pool configuration for the webhook and
// outbound queues. These values control how jobs are polled, claimed,
// and retried.
type QueueConfig struct {
	// WebhookWorkers is the number of webhook-processing goroutines
	// per replica. Each worker independently polls and claims jobs.
	WebhookWorkers int

	// OutboundWorkers is the number of outbound-send goroutines per replica.
	OutboundWorkers int

	// MaxAttempts is the per-job delivery attempt budget before the job
	// moves to the dead-letter bucket.
	MaxAttempts int

	// WebhookBackoffBase seeds the exponential retry backoff for
	// webhook jobs: base * 2^(attempt-1).
	WebhookBackoffBase time.Duration

	// OutboundBackoffBase seeds the exponential retry backoff for
	// outbound jobs.
	OutboundBackoffBase time.Duration

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout bounds a single job execution.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		WebhookWorkers:          16,
		OutboundWorkers:         16,
		MaxAttempts:             3,
		WebhookBackoffBase:      1 * time.Second,
		OutboundBackoffBase:     2 * time.Second,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              1 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

func loadQueueFromEnv() QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WebhookWorkers = getIntEnv("WEBHOOK_WORKERS", cfg.WebhookWorkers)
	cfg.OutboundWorkers = getIntEnv("OUTBOUND_WORKERS", cfg.OutboundWorkers)
	cfg.MaxAttempts = getIntEnv("QUEUE_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.PollInterval = getDurationEnv("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	cfg.JobTimeout = getDurationEnv("QUEUE_JOB_TIMEOUT", cfg.JobTimeout)
	cfg.GracefulShutdownTimeout = getDurationEnv("QUEUE_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	return cfg
}

// Validate checks queue settings for sanity.
func (q QueueConfig) Validate() error {
	if q.WebhookWorkers <= 0 {
		return fmt.Errorf("webhook worker count must be positive, got %d", q.WebhookWorkers)
	}
	if q.OutboundWorkers <= 0 {
		return fmt.Errorf("outbound worker count must be positive, got %d", q.OutboundWorkers)
	}
	if q.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", q.MaxAttempts)
	}
	if q.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", q.PollInterval)
	}
	return nil
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// Omnibox server — receives provider webhooks, runs the queue workers,
// serves the agent REST API, and holds the WebSocket gateway.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/omniboxhq/omnibox/pkg/api"
	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/coord"
	"github.com/omniboxhq/omnibox/pkg/database"
	"github.com/omniboxhq/omnibox/pkg/events"
	"github.com/omniboxhq/omnibox/pkg/gateway"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/queue"
	"github.com/omniboxhq/omnibox/pkg/services"
	"github.com/omniboxhq/omnibox/pkg/version"
)

// staleJobSweepInterval is how often this instance looks for jobs left
// running by a crashed peer.
const staleJobSweepInterval = time.Minute

// resolveInstanceID determines the instance identifier for
// multi-replica coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolveInstanceID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// conversationAuthorizer gates conversation-room joins on the
// conversation being visible to the agent's organization.
type conversationAuthorizer struct {
	conversations *services.ConversationService
}

func (a *conversationAuthorizer) CanJoinConversation(ctx context.Context, orgID, conversationID string) error {
	_, err := a.conversations.Get(ctx, orgID, conversationID)
	return err
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file, using existing environment")
	}

	instanceID := resolveInstanceID()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting omnibox",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"instance_id", instanceID)

	ctx := context.Background()

	// Database, with migrations applied on connect.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Coordination store: accept locks, session cache, event channel.
	coordClient, err := coord.NewClient(ctx, cfg.Coord)
	if err != nil {
		slog.Error("Failed to connect to coordination store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := coordClient.Close(); err != nil {
			slog.Error("Error closing coordination client", "error", err)
		}
	}()

	// Recover state a previous run of this instance left behind.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, instanceID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — continue
	}
	if err := gateway.ReapInstanceSessions(ctx, dbClient.Client, instanceID); err != nil {
		slog.Error("Failed to reap stale agent sessions", "error", err)
	}

	// Provider adapters.
	adapters := map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: provider.NewWhatsAppAdapter(
			cfg.Providers.WhatsApp.APIBaseURL, cfg.Providers.WhatsApp.Timeout),
		provider.KindMessenger: provider.NewMessengerAdapter(
			cfg.Providers.Messenger.APIBaseURL, cfg.Providers.Messenger.Timeout),
	}

	// Realtime layer. The hub and the session tracker reference each
	// other through the publisher, so the lifecycle is wired in last.
	hub := gateway.NewHub(&cfg.Gateway, nil, nil, nil)
	publisher := events.NewPublisher(coordClient, hub, instanceID)

	conversations := services.NewConversationService(dbClient.Client, coordClient, publisher)
	messages := services.NewMessageService(dbClient.Client, publisher)
	webhooks := services.NewWebhookService(dbClient.Client, adapters, messages, publisher)
	slog.Info("Services initialized")

	presence := gateway.NewPresence(dbClient.Client, coordClient, conversations, publisher, instanceID)
	hub.SetLifecycle(presence)
	hub.SetAuthorizer(&conversationAuthorizer{conversations})
	hub.SetTyping(publisher)

	bridge := events.NewBridge(coordClient, hub, instanceID)
	bridge.Start(ctx)
	defer bridge.Stop()
	slog.Info("Event bridge started")

	// Worker pools.
	webhookPool := queue.NewWebhookPool(instanceID, dbClient.Client, &cfg.Queue,
		queue.NewWebhookExecutor(webhooks))
	if err := webhookPool.Start(ctx); err != nil {
		slog.Error("Failed to start webhook pool", "error", err)
		os.Exit(1)
	}
	outboundPool := queue.NewOutboundPool(instanceID, dbClient.Client, &cfg.Queue,
		queue.NewOutboundExecutor(dbClient.Client, adapters, messages))
	if err := outboundPool.Start(ctx); err != nil {
		slog.Error("Failed to start outbound pool", "error", err)
		os.Exit(1)
	}

	// Periodic sweep for jobs stuck running after a peer crash.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(staleJobSweepInterval)
		defer ticker.Stop()
		threshold := cfg.Queue.JobTimeout * 2
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if n, err := queue.RequeueStaleJobs(sweepCtx, dbClient.Client, threshold); err != nil {
					slog.Error("Stale job sweep failed", "error", err)
				} else if n > 0 {
					slog.Warn("Requeued stale jobs", "count", n)
				}
			}
		}
	}()

	// HTTP server.
	httpServer := api.NewServer(cfg, dbClient, coordClient, conversations, messages, adapters, hub)
	httpServer.SetWebhookPool(webhookPool)
	httpServer.SetOutboundPool(outboundPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Omnibox started",
		"instance_id", instanceID,
		"webhook_workers", cfg.Queue.WebhookWorkers,
		"outbound_workers", cfg.Queue.OutboundWorkers)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Drain workers within the shutdown budget, then stop the HTTP
	// server with its own allowance.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		webhookPool.Stop()
		outboundPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight jobs will be requeued on restart")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

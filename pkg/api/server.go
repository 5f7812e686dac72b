// Package api is the HTTP edge of the inbox service: webhook receivers,
// the agent-facing REST surface, the WebSocket upgrade, and the health
// endpoint. Handlers stay thin; behavior lives in the service layer and
// errors are mapped to HTTP statuses in one place.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/coord"
	"github.com/omniboxhq/omnibox/pkg/database"
	"github.com/omniboxhq/omnibox/pkg/gateway"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/queue"
	"github.com/omniboxhq/omnibox/pkg/services"
)

// Server is the HTTP server. Construct with NewServer, then Start.
type Server struct {
	config   *config.Config
	dbClient *database.Client
	coord    *coord.Client

	conversations *services.ConversationService
	messages      *services.MessageService
	adapters      map[provider.Kind]provider.Adapter

	hub          *gateway.Hub
	webhookPool  *queue.WorkerPool
	outboundPool *queue.WorkerPool

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	coordClient *coord.Client,
	conversations *services.ConversationService,
	messages *services.MessageService,
	adapters map[provider.Kind]provider.Adapter,
	hub *gateway.Hub,
) *Server {
	s := &Server{
		config:        cfg,
		dbClient:      dbClient,
		coord:         coordClient,
		conversations: conversations,
		messages:      messages,
		adapters:      adapters,
		hub:           hub,
		echo:          echo.New(),
	}
	s.setupRoutes()
	return s
}

// SetWebhookPool attaches the webhook worker pool for health reporting.
func (s *Server) SetWebhookPool(pool *queue.WorkerPool) {
	s.webhookPool = pool
}

// SetOutboundPool attaches the outbound worker pool for health reporting.
func (s *Server) SetOutboundPool(pool *queue.WorkerPool) {
	s.outboundPool = pool
}

func (s *Server) setupRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(corsHeaders(s.config.FrontendURL))

	s.echo.GET("/health", s.healthHandler)

	// Webhook endpoints authenticate with provider signatures, not
	// agent tokens.
	s.echo.GET("/api/webhooks/:provider/:channelId", s.verifyWebhookHandler)
	s.echo.POST("/api/webhooks/:provider/:channelId", s.receiveWebhookHandler)

	authed := s.echo.Group("/api", s.requireAuth())
	authed.GET("/conversations", s.listConversationsHandler)
	authed.GET("/conversations/:id", s.getConversationHandler)
	authed.POST("/conversations/:id/accept", s.acceptConversationHandler)
	authed.POST("/conversations/:id/release", s.releaseConversationHandler)
	authed.POST("/conversations/:id/complete", s.completeConversationHandler)
	authed.GET("/conversations/:id/events", s.listConversationEventsHandler)
	authed.GET("/conversations/:id/messages", s.listMessagesHandler)
	authed.POST("/conversations/:id/messages", s.sendMessageHandler)
	authed.GET("/ws", s.wsHandler)
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

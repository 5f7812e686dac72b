package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/omniboxhq/omnibox/pkg/provider"
)

// verifyWebhookHandler handles GET /api/webhooks/:provider/:channelId,
// the provider's subscription handshake. The challenge is echoed back
// verbatim when the verify token matches the channel's webhook secret.
func (s *Server) verifyWebhookHandler(c *echo.Context) error {
	ch, err := s.loadWebhookChannel(c)
	if err != nil {
		return err
	}

	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode != "subscribe" || token != ch.WebhookSecret {
		return echo.NewHTTPError(http.StatusUnauthorized, "verification failed")
	}
	return c.String(http.StatusOK, challenge)
}

// receiveWebhookHandler handles POST /api/webhooks/:provider/:channelId.
// The signature is verified over the exact raw body, then a job is
// enqueued and 200 returned. Providers retry aggressively on non-2xx,
// so downstream processing failures must not surface here.
func (s *Server) receiveWebhookHandler(c *echo.Context) error {
	ch, err := s.loadWebhookChannel(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	secret := s.signingSecret(ch)
	header := c.Request().Header.Get("X-Hub-Signature-256")
	if err := provider.VerifySignature(secret, body, header); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")
	}

	// Confirm the delivery actually addresses this channel. Mismatches
	// happen when a provider app fans out to every subscribed URL; they
	// are dropped silently so the provider does not retry.
	adapter, ok := s.adapters[provider.Kind(ch.Provider)]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported provider")
	}
	addressingID, err := adapter.ExtractAddressingID(body)
	if err != nil || !channelMatchesAddressing(ch, addressingID) {
		slog.Info("Dropping webhook for unmatched addressing id",
			"channel_id", ch.ID, "addressing_id", addressingID)
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	payload, err := models.ToPayloadMap(models.WebhookJobPayload{
		ChannelID:  ch.ID,
		RawPayload: body,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.dbClient.Job.Create().
		SetID(uuid.New().String()).
		SetQueue(job.QueueWebhook).
		SetPayload(payload).
		SetStatus(job.StatusPending).
		SetMaxAttempts(s.config.Queue.MaxAttempts).
		SetRunAt(time.Now()).
		Exec(c.Request().Context()); err != nil {
		slog.Error("Failed to enqueue webhook job", "channel_id", ch.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to accept webhook")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "accepted"})
}

// loadWebhookChannel resolves the channel from the path and checks the
// provider segment agrees with the channel's configured provider.
func (s *Server) loadWebhookChannel(c *echo.Context) (*ent.Channel, error) {
	channelID := c.Param("channelId")
	if channelID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "channel id is required")
	}

	ch, err := s.dbClient.Channel.Get(c.Request().Context(), channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "unknown channel")
		}
		slog.Error("Failed to load channel", "channel_id", channelID, "error", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "failed to load channel")
	}

	if c.Param("provider") != string(ch.Provider) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "provider mismatch")
	}
	return ch, nil
}

// signingSecret picks the channel's own app secret when configured,
// falling back to the provider-wide secret.
func (s *Server) signingSecret(ch *ent.Channel) string {
	if ch.AppSecret != nil && *ch.AppSecret != "" {
		return *ch.AppSecret
	}
	switch provider.Kind(ch.Provider) {
	case provider.KindWhatsApp:
		return s.config.Providers.WhatsApp.AppSecret
	case provider.KindMessenger:
		return s.config.Providers.Messenger.AppSecret
	}
	return ""
}

// channelMatchesAddressing compares the webhook's addressing id against
// the channel config's phone_number_id or page_id.
func channelMatchesAddressing(ch *ent.Channel, addressingID string) bool {
	if addressingID == "" {
		return false
	}
	for _, key := range []string{"phone_number_id", "page_id"} {
		if v, ok := ch.Config[key].(string); ok && v == addressingID {
			return true
		}
	}
	return false
}

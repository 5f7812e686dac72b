package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/job"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/omniboxhq/omnibox/pkg/provider"
)

// stubAdapter satisfies provider.Adapter for ingest tests. Only
// ExtractAddressingID is exercised by the receiver.
type stubAdapter struct {
	kind         provider.Kind
	addressingID string
}

func (a *stubAdapter) Kind() provider.Kind { return a.kind }

func (a *stubAdapter) ExtractAddressingID([]byte) (string, error) {
	return a.addressingID, nil
}

func (a *stubAdapter) ParseWebhook([]byte) ([]provider.Event, error) {
	return nil, nil
}

func (a *stubAdapter) Send(context.Context, provider.SendTarget, provider.OutboundMessage) (*provider.SendResult, error) {
	return nil, provider.NewPermanentError("stub", "not implemented")
}

func postWebhook(s *Server, path string, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func webhookJobs(t *testing.T, client *ent.Client) []*ent.Job {
	t.Helper()
	jobs, err := client.Job.Query().Where(job.QueueEQ(job.QueueWebhook)).All(context.Background())
	require.NoError(t, err)
	return jobs
}

func TestVerifyWebhookHandler(t *testing.T) {
	adapters := map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: &stubAdapter{kind: provider.KindWhatsApp, addressingID: "15550001111"},
	}
	s, _, f := setupTestServer(t, adapters)
	base := "/api/webhooks/whatsapp/" + f.Channel.ID

	t.Run("matching verify token echoes challenge", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			base+"?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=1158201444", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1158201444", rec.Body.String())
	})

	t.Run("wrong verify token rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			base+"?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=x", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong mode rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			base+"?hub.mode=unsubscribe&hub.verify_token=verify-me&hub.challenge=x", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown channel", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/api/webhooks/whatsapp/missing?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=x", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReceiveWebhookHandler(t *testing.T) {
	adapters := map[provider.Kind]provider.Adapter{
		provider.KindWhatsApp: &stubAdapter{kind: provider.KindWhatsApp, addressingID: "15550001111"},
	}
	s, client, f := setupTestServer(t, adapters)
	base := "/api/webhooks/whatsapp/" + f.Channel.ID
	body := []byte(`{"entry":[{"changes":[{"value":{"metadata":{"phone_number_id":"15550001111"}}}]}]}`)

	t.Run("valid signature enqueues a job", func(t *testing.T) {
		rec := postWebhook(s, base, body, provider.ComputeSignature("wa-secret", body))
		require.Equal(t, http.StatusOK, rec.Code)

		jobs := webhookJobs(t, client)
		require.Len(t, jobs, 1)
		assert.Equal(t, job.StatusPending, jobs[0].Status)

		var payload models.WebhookJobPayload
		require.NoError(t, models.FromPayloadMap(jobs[0].Payload, &payload))
		assert.Equal(t, f.Channel.ID, payload.ChannelID)
		assert.Equal(t, body, payload.RawPayload)
	})

	t.Run("bad signature rejected without persistence", func(t *testing.T) {
		before := len(webhookJobs(t, client))
		rec := postWebhook(s, base, body, "sha256=0000000000000000000000000000000000000000000000000000000000000000")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Len(t, webhookJobs(t, client), before)
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		rec := postWebhook(s, base, body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign addressing id dropped silently", func(t *testing.T) {
		other := map[provider.Kind]provider.Adapter{
			provider.KindWhatsApp: &stubAdapter{kind: provider.KindWhatsApp, addressingID: "19990009999"},
		}
		s2, client2, f2 := setupTestServer(t, other)
		rec := postWebhook(s2, "/api/webhooks/whatsapp/"+f2.Channel.ID, body,
			provider.ComputeSignature("wa-secret", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ignored")
		assert.Empty(t, webhookJobs(t, client2))
	})

	t.Run("provider segment must match the channel", func(t *testing.T) {
		rec := postWebhook(s, "/api/webhooks/messenger/"+f.Channel.ID, body,
			provider.ComputeSignature("wa-secret", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("channel app secret overrides the provider default", func(t *testing.T) {
		s2, client2, f2 := setupTestServer(t, adapters)
		_, err := client2.Channel.UpdateOneID(f2.Channel.ID).
			SetAppSecret("channel-own-secret").
			Save(context.Background())
		require.NoError(t, err)

		path := "/api/webhooks/whatsapp/" + f2.Channel.ID
		rec := postWebhook(s2, path, body, provider.ComputeSignature("wa-secret", body))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = postWebhook(s2, path, body, provider.ComputeSignature("channel-own-secret", body))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, webhookJobs(t, client2), 1)
	})
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/channel"
	"github.com/omniboxhq/omnibox/ent/contact"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/omniboxhq/omnibox/ent/user"
	"github.com/omniboxhq/omnibox/pkg/config"
	"github.com/omniboxhq/omnibox/pkg/database"
	"github.com/omniboxhq/omnibox/pkg/provider"
	"github.com/omniboxhq/omnibox/pkg/services"

	"github.com/omniboxhq/omnibox/test/util"
)

// memLocker is an in-process Locker standing in for the coordination store.
type memLocker struct {
	mu    sync.Mutex
	owner map[string]string
}

func newMemLocker() *memLocker {
	return &memLocker{owner: make(map[string]string)}
}

func (l *memLocker) TryLock(_ context.Context, key, owner string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if holder, held := l.owner[key]; held && holder != owner {
		return false, nil
	}
	l.owner[key] = owner
	return true, nil
}

func (l *memLocker) Unlock(_ context.Context, key, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner[key] == owner {
		delete(l.owner, key)
	}
	return nil
}

type apiFixture struct {
	Org     *ent.Organization
	Channel *ent.Channel
	Contact *ent.Contact
	Agent   *ent.User
	Agent2  *ent.User
}

func setupTestServer(t *testing.T, adapters map[provider.Kind]provider.Adapter) (*Server, *ent.Client, *apiFixture) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	f := &apiFixture{}
	var err error
	f.Org, err = client.Organization.Create().
		SetID(uuid.New().String()).
		SetName("Acme Support").
		SetSlug("acme-" + uuid.New().String()[:8]).
		Save(ctx)
	require.NoError(t, err)

	f.Channel, err = client.Channel.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(f.Org.ID).
		SetProvider(channel.ProviderWhatsapp).
		SetName("Main line").
		SetConfig(map[string]interface{}{
			"phone_number_id": "15550001111",
			"access_token":    "chan-token",
		}).
		SetWebhookSecret("verify-me").
		Save(ctx)
	require.NoError(t, err)

	f.Contact, err = client.Contact.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(f.Org.ID).
		SetProvider(contact.ProviderWhatsapp).
		SetProviderID("491700001111").
		SetDisplayName("Ada").
		SetLastSeenAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	f.Agent, err = client.User.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(f.Org.ID).
		SetEmail(uuid.New().String()[:8] + "@acme.test").
		SetDisplayName("Agent One").
		SetRole(user.RoleAgent).
		Save(ctx)
	require.NoError(t, err)

	f.Agent2, err = client.User.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(f.Org.ID).
		SetEmail(uuid.New().String()[:8] + "@acme.test").
		SetDisplayName("Agent Two").
		SetRole(user.RoleAgent).
		Save(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		AuthSecret:  testAuthSecret,
		AuthURL:     testIssuer,
		FrontendURL: "http://localhost:5173",
		Providers: config.ProvidersConfig{
			WhatsApp:  config.ProviderConfig{AppSecret: "wa-secret"},
			Messenger: config.ProviderConfig{AppSecret: "ms-secret"},
		},
		Queue:   config.DefaultQueueConfig(),
		Gateway: config.DefaultGatewayConfig(),
	}

	conversations := services.NewConversationService(client, newMemLocker(), nil)
	messages := services.NewMessageService(client, nil)
	dbClient := database.NewClientFromEnt(client, db)

	s := NewServer(cfg, dbClient, nil, conversations, messages, adapters, nil)
	return s, client, f
}

func createPendingConversation(t *testing.T, client *ent.Client, f *apiFixture) *ent.Conversation {
	t.Helper()
	conv, err := client.Conversation.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(f.Org.ID).
		SetChannelID(f.Channel.ID).
		SetContactID(f.Contact.ID).
		SetStatus(conversation.StatusPending).
		Save(context.Background())
	require.NoError(t, err)
	return conv
}

func doRequest(t *testing.T, s *Server, method, path, agentID, orgID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if agentID != "" {
		req.Header.Set("Authorization", "Bearer "+mintToken(t, tokenClaims{
			Identity:  Identity{UserID: agentID, OrganizationID: orgID, Role: "agent"},
			Issuer:    testIssuer,
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		}))
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestConversationEndpoints(t *testing.T) {
	s, client, f := setupTestServer(t, nil)
	conv := createPendingConversation(t, client, f)

	t.Run("unauthenticated list rejected", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations", "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("list returns the conversation with relations", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations", f.Agent.ID, f.Org.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var page struct {
			Conversations []struct {
				ID      string `json:"id"`
				Contact *struct {
					DisplayName *string `json:"display_name"`
				} `json:"contact"`
			} `json:"conversations"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		require.Equal(t, 1, page.Total)
		assert.Equal(t, conv.ID, page.Conversations[0].ID)
		require.NotNil(t, page.Conversations[0].Contact)
	})

	t.Run("accept assigns to caller", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/accept", f.Agent.ID, f.Org.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got, err := client.Conversation.Get(context.Background(), conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conversation.StatusAssigned, got.Status)
		require.NotNil(t, got.AssignedAgentID)
		assert.Equal(t, f.Agent.ID, *got.AssignedAgentID)
	})

	t.Run("second accept conflicts", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/accept", f.Agent2.ID, f.Org.ID, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("release by non-owner forbidden", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/release", f.Agent2.ID, f.Org.ID, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("complete clears assignment", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/complete", f.Agent.ID, f.Org.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got, err := client.Conversation.Get(context.Background(), conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conversation.StatusCompleted, got.Status)
		assert.Nil(t, got.AssignedAgentID)
	})

	t.Run("audit trail newest first", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations/"+conv.ID+"/events", f.Agent.ID, f.Org.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Events []struct {
				EventType string `json:"event_type"`
			} `json:"events"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.Total)
	})

	t.Run("oversized events limit is clamped, not reset", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations/"+conv.ID+"/events?limit=150", f.Agent.ID, f.Org.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Events []struct {
				EventType string `json:"event_type"`
			} `json:"events"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 100, resp.Limit)
		assert.Len(t, resp.Events, resp.Total)
	})

	t.Run("unknown conversation 404", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations/"+uuid.New().String(), f.Agent.ID, f.Org.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("foreign org cannot see the conversation", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations/"+conv.ID, f.Agent.ID, uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMessageEndpoints(t *testing.T) {
	s, client, f := setupTestServer(t, nil)
	conv := createPendingConversation(t, client, f)

	accept := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/accept", f.Agent.ID, f.Org.ID, nil)
	require.Equal(t, http.StatusOK, accept.Code)

	t.Run("send creates a pending outbound message", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/messages",
			f.Agent.ID, f.Org.ID, map[string]string{"body": "Hello"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var msg struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		assert.Equal(t, "pending", msg.Status)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/messages",
			f.Agent.ID, f.Org.ID, map[string]string{"body": ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-assignee send forbidden", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/conversations/"+conv.ID+"/messages",
			f.Agent2.ID, f.Org.ID, map[string]string{"body": "Hi"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("history lists newest first", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/conversations/"+conv.ID+"/messages", f.Agent.ID, f.Org.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var page struct {
			Data []struct {
				Body *string `json:"body"`
			} `json:"data"`
			NextCursor *string `json:"nextCursor"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		require.Len(t, page.Data, 1)
		assert.Nil(t, page.NextCursor)
	})
}

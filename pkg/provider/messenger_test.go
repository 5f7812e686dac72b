package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessengerAdapter_ParseWebhook_TextMessage(t *testing.T) {
	adapter := NewMessengerAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"messaging": [{
				"sender": {"id": "psid-123"},
				"timestamp": 1724580000000,
				"message": {"mid": "m_abc", "text": "hi from messenger"}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)

	msg := events[0].Message
	require.NotNil(t, msg)
	assert.Equal(t, KindMessenger, msg.Provider)
	assert.Equal(t, "m_abc", msg.ProviderMessageID)
	assert.Equal(t, "psid-123", msg.SenderID)
	assert.Equal(t, "hi from messenger", msg.Body)
	assert.Equal(t, time.UnixMilli(1724580000000).UTC(), msg.Timestamp)
}

func TestMessengerAdapter_ParseWebhook_SkipsEchoes(t *testing.T) {
	adapter := NewMessengerAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"messaging": [{
				"sender": {"id": "page-1"},
				"timestamp": 1724580000000,
				"message": {"mid": "m_echo", "text": "our own send", "is_echo": true}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMessengerAdapter_ParseWebhook_DeliveryReceipt(t *testing.T) {
	adapter := NewMessengerAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"messaging": [{
				"sender": {"id": "psid-123"},
				"delivery": {"mids": ["m_out1", "m_out2"], "watermark": 1724580000000}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "m_out1", events[0].Status.ProviderMessageID)
	assert.Equal(t, "delivered", events[0].Status.Status)
	assert.Equal(t, "m_out2", events[1].Status.ProviderMessageID)
}

func TestMessengerAdapter_ParseWebhook_ReadWatermark(t *testing.T) {
	adapter := NewMessengerAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"messaging": [{
				"sender": {"id": "psid-123"},
				"read": {"watermark": 1724580000000}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)

	st := events[0].Status
	require.NotNil(t, st)
	assert.Equal(t, "read", st.Status)
	assert.Empty(t, st.ProviderMessageID)
	assert.Equal(t, time.UnixMilli(1724580000000).UTC(), st.Watermark)
	assert.Equal(t, "psid-123", st.RecipientID)
}

func TestMessengerAdapter_ParseWebhook_Attachment(t *testing.T) {
	adapter := NewMessengerAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"messaging": [{
				"sender": {"id": "psid-123"},
				"timestamp": 1724580000000,
				"message": {
					"mid": "m_media",
					"attachments": [{"type": "image", "payload": {"url": "https://cdn.example/img.jpg"}}]
				}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "https://cdn.example/img.jpg", events[0].Message.MediaRef)
	assert.Equal(t, "image", events[0].Message.MediaType)
}

func TestMessengerAdapter_Send(t *testing.T) {
	var gotPath, gotToken string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]string{"message_id": "m_sent1"})
	}))
	defer server.Close()

	adapter := NewMessengerAdapter(server.URL, time.Second)
	result, err := adapter.Send(context.Background(), SendTarget{
		AccessToken: "page-token",
		PageID:      "page-1",
	}, OutboundMessage{RecipientID: "psid-123", Body: "reply"})

	require.NoError(t, err)
	assert.Equal(t, "m_sent1", result.ProviderMessageID)
	assert.Equal(t, "/page-1/messages", gotPath)
	assert.Equal(t, "page-token", gotToken)
	assert.Equal(t, "RESPONSE", gotPayload["messaging_type"])
}

func TestMessengerAdapter_Send_PermanentError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 551, "message": "This person isn't available right now"}}`))
	}))
	defer server.Close()

	adapter := NewMessengerAdapter(server.URL, time.Second)
	_, err := adapter.Send(context.Background(), SendTarget{AccessToken: "t", PageID: "p"},
		OutboundMessage{RecipientID: "psid", Body: "x"})

	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.False(t, pe.Retryable)
	assert.Equal(t, "551", pe.Code)
}

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

func TestWhatsAppAdapter_ParseWebhook_TextMessage(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"contacts": [{"wa_id": "15550001111", "profile": {"name": "Ada Lovelace"}}],
					"messages": [{
						"id": "wamid.abc123",
						"from": "15550001111",
						"timestamp": "1724580000",
						"type": "text",
						"text": {"body": "hello there"}
					}]
				}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)

	msg := events[0].Message
	require.NotNil(t, msg)
	assert.Equal(t, KindWhatsApp, msg.Provider)
	assert.Equal(t, "wamid.abc123", msg.ProviderMessageID)
	assert.Equal(t, "15550001111", msg.SenderID)
	assert.Equal(t, "Ada Lovelace", msg.SenderName)
	assert.Equal(t, "hello there", msg.Body)
	assert.Equal(t, time.Unix(1724580000, 0).UTC(), msg.Timestamp)
}

func TestWhatsAppAdapter_ParseWebhook_MediaMessage(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"messages": [{
						"id": "wamid.media1",
						"from": "15550001111",
						"timestamp": "1724580000",
						"type": "image",
						"image": {"id": "media-123", "mime_type": "image/jpeg", "caption": "look at this"}
					}]
				}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)

	msg := events[0].Message
	require.NotNil(t, msg)
	assert.Equal(t, "media-123", msg.MediaRef)
	assert.Equal(t, "image/jpeg", msg.MediaType)
	assert.Equal(t, "look at this", msg.Body)
}

func TestWhatsAppAdapter_ParseWebhook_Statuses(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"statuses": [
						{"id": "wamid.out1", "recipient_id": "15550001111", "status": "delivered", "timestamp": "1724580010"},
						{"id": "wamid.out2", "recipient_id": "15550001111", "status": "failed", "timestamp": "1724580020",
						 "errors": [{"code": 131026, "title": "Receiver incapable"}]}
					]
				}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 2)

	delivered := events[0].Status
	require.NotNil(t, delivered)
	assert.Equal(t, "wamid.out1", delivered.ProviderMessageID)
	assert.Equal(t, "delivered", delivered.Status)

	failed := events[1].Status
	require.NotNil(t, failed)
	assert.Equal(t, "failed", failed.Status)
	assert.Equal(t, "131026", failed.ErrorCode)
	assert.Equal(t, "Receiver incapable", failed.ErrorMessage)
}

func TestWhatsAppAdapter_ParseWebhook_LocationMessage(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"messages": [{
						"id": "wamid.loc1",
						"from": "15550001111",
						"timestamp": "1724580000",
						"type": "location",
						"location": {"latitude": 52.520008, "longitude": 13.404954, "name": "Brandenburg Gate", "address": "Pariser Platz, Berlin"}
					}]
				}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)

	msg := events[0].Message
	require.NotNil(t, msg)
	assert.Equal(t, "wamid.loc1", msg.ProviderMessageID)
	assert.Equal(t, "Brandenburg Gate, Pariser Platz, Berlin (52.520008,13.404954)", msg.Body)
	assert.Empty(t, msg.MediaRef)
}

func TestWhatsAppAdapter_ParseWebhook_LocationCoordinatesOnly(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"messages": [{
						"id": "wamid.loc2",
						"from": "15550001111",
						"timestamp": "1724580000",
						"type": "location",
						"location": {"latitude": -33.8688, "longitude": 151.2093}
					}]
				}
			}]
		}]
	}`)

	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "-33.868800,151.209300", events[0].Message.Body)
}

func TestWhatsAppAdapter_ParseWebhook_UnknownTypeFallsBack(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	body := []byte(`{
		"entry": [{
			"changes": [{
				"value": {
					"messages": [
						{"id": "wamid.sticker", "from": "1", "timestamp": "1", "type": "sticker"},
						{"id": "wamid.text", "from": "1", "timestamp": "1", "type": "text", "text": {"body": "kept"}}
					]
				}
			}]
		}]
	}`)

	// An unsupported variant still yields a message event so the
	// conversation and dedup row get created; the body stays empty.
	events, err := adapter.ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "wamid.sticker", events[0].Message.ProviderMessageID)
	assert.Empty(t, events[0].Message.Body)
	assert.Empty(t, events[0].Message.MediaRef)
	assert.Equal(t, "wamid.text", events[1].Message.ProviderMessageID)
	assert.Equal(t, "kept", events[1].Message.Body)
}

func TestWhatsAppAdapter_ParseWebhook_Malformed(t *testing.T) {
	adapter := NewWhatsAppAdapter("https://example.invalid", time.Second)

	_, err := adapter.ParseWebhook([]byte(`not json`))
	assert.Error(t, err)
}

func TestWhatsAppAdapter_Send(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"messages": []map[string]string{{"id": "wamid.sent1"}},
		})
	}))
	defer server.Close()

	adapter := NewWhatsAppAdapter(server.URL, time.Second)
	result, err := adapter.Send(context.Background(), SendTarget{
		AccessToken:   "token-1",
		PhoneNumberID: "phone-1",
	}, OutboundMessage{RecipientID: "15550001111", Body: "reply text"})

	require.NoError(t, err)
	assert.Equal(t, "wamid.sent1", result.ProviderMessageID)
	assert.Equal(t, "/phone-1/messages", gotPath)
	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, "whatsapp", gotPayload["messaging_product"])
	assert.Equal(t, "15550001111", gotPayload["to"])
}

func TestWhatsAppAdapter_Send_MediaTypes(t *testing.T) {
	tests := []struct {
		mediaType string
		wantType  string
	}{
		{"image/jpeg", "image"},
		{"audio/ogg", "audio"},
		{"video/mp4", "video"},
		{"application/pdf", "document"},
		{"image", "image"},
		{"", "document"},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			var gotPayload map[string]interface{}
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"messages": []map[string]string{{"id": "wamid.media"}},
				})
			}))
			defer server.Close()

			adapter := NewWhatsAppAdapter(server.URL, time.Second)
			_, err := adapter.Send(context.Background(), SendTarget{
				AccessToken:   "t",
				PhoneNumberID: "p",
			}, OutboundMessage{
				RecipientID: "15550001111",
				MediaRef:    "media-42",
				MediaType:   tt.mediaType,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, gotPayload["type"])
			media, ok := gotPayload[tt.wantType].(map[string]interface{})
			require.True(t, ok, "media object keyed by its type")
			assert.Equal(t, "media-42", media["id"])
		})
	}
}

func TestWhatsAppAdapter_Send_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantRetryable bool
	}{
		{
			name:          "rate limited",
			status:        http.StatusTooManyRequests,
			body:          `{"error": {"code": 4, "message": "Application request limit reached"}}`,
			wantRetryable: true,
		},
		{
			name:          "server error",
			status:        http.StatusInternalServerError,
			body:          `{"error": {"code": 2, "message": "service temporarily unavailable"}}`,
			wantRetryable: true,
		},
		{
			name:          "bad recipient",
			status:        http.StatusBadRequest,
			body:          `{"error": {"code": 131026, "message": "Receiver incapable"}}`,
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			adapter := NewWhatsAppAdapter(server.URL, time.Second)
			_, err := adapter.Send(context.Background(), SendTarget{
				AccessToken:   "t",
				PhoneNumberID: "p",
			}, OutboundMessage{RecipientID: "1", Body: "x"})

			require.Error(t, err)
			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantRetryable, pe.Retryable)
		})
	}
}

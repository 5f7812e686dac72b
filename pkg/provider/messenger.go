package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MessengerAdapter handles Facebook Messenger: Page webhook payloads in,
// Send API out.
type MessengerAdapter struct {
	baseURL    string
	httpClient *http.Client
}

// NewMessengerAdapter creates a Messenger adapter against the given
// Graph API root.
func NewMessengerAdapter(baseURL string, timeout time.Duration) *MessengerAdapter {
	return &MessengerAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Kind returns the provider identifier.
func (a *MessengerAdapter) Kind() Kind {
	return KindMessenger
}

// msPayload mirrors the Page webhook envelope.
type msPayload struct {
	Entry []struct {
		ID        string        `json:"id"` // page ID
		Messaging []msMessaging `json:"messaging"`
	} `json:"entry"`
}

type msMessaging struct {
	Sender struct {
		ID string `json:"id"`
	} `json:"sender"`
	Timestamp int64 `json:"timestamp"` // milliseconds
	Message   *struct {
		MID         string `json:"mid"`
		Text        string `json:"text"`
		IsEcho      bool   `json:"is_echo"`
		Attachments []struct {
			Type    string `json:"type"`
			Payload struct {
				URL string `json:"url"`
			} `json:"payload"`
		} `json:"attachments"`
	} `json:"message"`
	Delivery *struct {
		MIDs      []string `json:"mids"`
		Watermark int64    `json:"watermark"`
	} `json:"delivery"`
	Read *struct {
		Watermark int64 `json:"watermark"`
	} `json:"read"`
}

// ExtractAddressingID returns the page ID the delivery targets.
func (a *MessengerAdapter) ExtractAddressingID(body []byte) (string, error) {
	var payload msPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	for _, entry := range payload.Entry {
		if entry.ID != "" {
			return entry.ID, nil
		}
	}
	return "", nil
}

// ParseWebhook normalizes a Page webhook body. Delivery receipts carry
// explicit message IDs; read receipts only carry a watermark, which the
// dispatcher resolves against stored outbound messages.
func (a *MessengerAdapter) ParseWebhook(body []byte) ([]Event, error) {
	var payload msPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	var events []Event
	for _, entry := range payload.Entry {
		for _, item := range entry.Messaging {
			switch {
			case item.Message != nil:
				// Echoes are our own sends reflected back.
				if item.Message.IsEcho {
					continue
				}
				inbound := &InboundMessage{
					Provider:          KindMessenger,
					ProviderMessageID: item.Message.MID,
					SenderID:          item.Sender.ID,
					Body:              item.Message.Text,
					Timestamp:         time.UnixMilli(item.Timestamp).UTC(),
				}
				if len(item.Message.Attachments) > 0 {
					att := item.Message.Attachments[0]
					inbound.MediaRef = att.Payload.URL
					inbound.MediaType = att.Type
				}
				events = append(events, Event{Message: inbound})

			case item.Delivery != nil:
				for _, mid := range item.Delivery.MIDs {
					events = append(events, Event{Status: &StatusUpdate{
						Provider:          KindMessenger,
						ProviderMessageID: mid,
						RecipientID:       item.Sender.ID,
						Status:            "delivered",
					}})
				}
				// Some deliveries omit mids and only carry a watermark.
				if len(item.Delivery.MIDs) == 0 && item.Delivery.Watermark > 0 {
					events = append(events, Event{Status: &StatusUpdate{
						Provider:    KindMessenger,
						RecipientID: item.Sender.ID,
						Status:      "delivered",
						Watermark:   time.UnixMilli(item.Delivery.Watermark).UTC(),
					}})
				}

			case item.Read != nil:
				events = append(events, Event{Status: &StatusUpdate{
					Provider:    KindMessenger,
					RecipientID: item.Sender.ID,
					Status:      "read",
					Watermark:   time.UnixMilli(item.Read.Watermark).UTC(),
				}})
			}
		}
	}

	return events, nil
}

type msSendResponse struct {
	MessageID string      `json:"message_id"`
	Error     *graphError `json:"error"`
}

// Send delivers an outbound message through the Send API.
func (a *MessengerAdapter) Send(ctx context.Context, target SendTarget, msg OutboundMessage) (*SendResult, error) {
	message := map[string]interface{}{}
	if msg.MediaRef != "" {
		message["attachment"] = map[string]interface{}{
			"type":    attachmentType(msg.MediaType),
			"payload": map[string]string{"url": msg.MediaRef},
		}
	} else {
		message["text"] = msg.Body
	}

	payload := map[string]interface{}{
		"recipient":      map[string]string{"id": msg.RecipientID},
		"messaging_type": "RESPONSE",
		"message":        message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages?access_token=%s", a.baseURL, target.PageID, target.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, NewRetryableError("network", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRetryableError("network", err.Error())
	}

	var parsed msSendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, classifyHTTPStatus(resp.StatusCode, "unparseable provider response")
	}

	if resp.StatusCode != http.StatusOK || parsed.MessageID == "" {
		if parsed.Error != nil {
			return nil, classifyGraphError(resp.StatusCode, parsed.Error)
		}
		return nil, classifyHTTPStatus(resp.StatusCode, "send rejected")
	}

	return &SendResult{ProviderMessageID: parsed.MessageID}, nil
}

func attachmentType(mediaType string) string {
	switch mediaType {
	case "image", "audio", "video", "file":
		return mediaType
	}
	return "file"
}

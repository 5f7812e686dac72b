package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// WhatsAppAdapter handles the WhatsApp Cloud API: webhook payloads in,
// Graph API sends out.
type WhatsAppAdapter struct {
	baseURL    string
	httpClient *http.Client
}

// NewWhatsAppAdapter creates a WhatsApp adapter against the given Graph
// API root (e.g. https://graph.facebook.com/v19.0).
func NewWhatsAppAdapter(baseURL string, timeout time.Duration) *WhatsAppAdapter {
	return &WhatsAppAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Kind returns the provider identifier.
func (a *WhatsAppAdapter) Kind() Kind {
	return KindWhatsApp
}

// waPayload mirrors the Cloud API webhook envelope. Meta batches
// multiple entries and changes per delivery.
type waPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Metadata struct {
					PhoneNumberID string `json:"phone_number_id"`
				} `json:"metadata"`
				Contacts []struct {
					WaID    string `json:"wa_id"`
					Profile struct {
						Name string `json:"name"`
					} `json:"profile"`
				} `json:"contacts"`
				Messages []waMessage `json:"messages"`
				Statuses []waStatus  `json:"statuses"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type waMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *struct {
		Body string `json:"body"`
	} `json:"text"`
	Image    *waMedia    `json:"image"`
	Audio    *waMedia    `json:"audio"`
	Video    *waMedia    `json:"video"`
	Document *waMedia    `json:"document"`
	Location *waLocation `json:"location"`
}

type waLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
}

type waMedia struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption"`
}

type waStatus struct {
	ID          string `json:"id"`
	RecipientID string `json:"recipient_id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Errors      []struct {
		Code  int    `json:"code"`
		Title string `json:"title"`
	} `json:"errors"`
}

// ExtractAddressingID returns the phone number ID the delivery targets.
func (a *WhatsAppAdapter) ExtractAddressingID(body []byte) (string, error) {
	var payload waPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if id := change.Value.Metadata.PhoneNumberID; id != "" {
				return id, nil
			}
		}
	}
	return "", nil
}

// ParseWebhook normalizes a Cloud API webhook body. Every message item
// yields an event: locations fold into the body, unknown types become a
// body-less message so the inbound is still recorded. Only items missing
// their own payload object are dropped; one malformed item must not
// poison the rest of the batch.
func (a *WhatsAppAdapter) ParseWebhook(body []byte) ([]Event, error) {
	var payload waPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	var events []Event
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			names := make(map[string]string, len(change.Value.Contacts))
			for _, c := range change.Value.Contacts {
				names[c.WaID] = c.Profile.Name
			}

			for _, msg := range change.Value.Messages {
				inbound := &InboundMessage{
					Provider:          KindWhatsApp,
					ProviderMessageID: msg.ID,
					SenderID:          msg.From,
					SenderName:        names[msg.From],
					Timestamp:         parseUnixSeconds(msg.Timestamp),
				}

				switch msg.Type {
				case "text":
					if msg.Text == nil {
						continue
					}
					inbound.Body = msg.Text.Body
				case "image", "audio", "video", "document":
					media := msg.media()
					if media == nil {
						continue
					}
					inbound.MediaRef = media.ID
					inbound.MediaType = media.MimeType
					inbound.Body = media.Caption
				case "location":
					if msg.Location == nil {
						continue
					}
					inbound.Body = locationBody(msg.Location)
				default:
					// Unsupported variant (sticker, contacts, interactive,
					// ...): record the message with an empty body.
				}

				events = append(events, Event{Message: inbound})
			}

			for _, st := range change.Value.Statuses {
				update := &StatusUpdate{
					Provider:          KindWhatsApp,
					ProviderMessageID: st.ID,
					RecipientID:       st.RecipientID,
					Status:            st.Status,
				}
				if len(st.Errors) > 0 {
					update.ErrorCode = strconv.Itoa(st.Errors[0].Code)
					update.ErrorMessage = st.Errors[0].Title
				}
				events = append(events, Event{Status: update})
			}
		}
	}

	return events, nil
}

func (m *waMessage) media() *waMedia {
	switch m.Type {
	case "image":
		return m.Image
	case "audio":
		return m.Audio
	case "video":
		return m.Video
	case "document":
		return m.Document
	}
	return nil
}

// locationBody folds a shared location into message text: the place
// name and address when present, always the coordinates.
func locationBody(loc *waLocation) string {
	coords := strconv.FormatFloat(loc.Latitude, 'f', 6, 64) + "," +
		strconv.FormatFloat(loc.Longitude, 'f', 6, 64)
	switch {
	case loc.Name != "" && loc.Address != "":
		return loc.Name + ", " + loc.Address + " (" + coords + ")"
	case loc.Name != "":
		return loc.Name + " (" + coords + ")"
	case loc.Address != "":
		return loc.Address + " (" + coords + ")"
	}
	return coords
}

func parseUnixSeconds(s string) time.Time {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

type waSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *graphError `json:"error"`
}

type graphError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send delivers an outbound message through the Cloud API.
func (a *WhatsAppAdapter) Send(ctx context.Context, target SendTarget, msg OutboundMessage) (*SendResult, error) {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                msg.RecipientID,
	}
	if msg.MediaRef != "" {
		mediaType := waOutboundType(msg.MediaType)
		payload["type"] = mediaType
		payload[mediaType] = map[string]string{"id": msg.MediaRef}
	} else {
		payload["type"] = "text"
		payload["text"] = map[string]string{"body": msg.Body}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", a.baseURL, target.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+target.AccessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, NewRetryableError("network", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRetryableError("network", err.Error())
	}

	var parsed waSendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, classifyHTTPStatus(resp.StatusCode, "unparseable provider response")
	}

	if resp.StatusCode != http.StatusOK || len(parsed.Messages) == 0 {
		if parsed.Error != nil {
			return nil, classifyGraphError(resp.StatusCode, parsed.Error)
		}
		return nil, classifyHTTPStatus(resp.StatusCode, "send rejected")
	}

	return &SendResult{ProviderMessageID: parsed.Messages[0].ID}, nil
}

// waOutboundType maps a stored media type (a MIME type for media that
// originated on WhatsApp, a bare kind otherwise) to the Cloud API
// payload type. Anything unrecognized goes out as a document.
func waOutboundType(mediaType string) string {
	for _, kind := range []string{"image", "audio", "video"} {
		if mediaType == kind || strings.HasPrefix(mediaType, kind+"/") {
			return kind
		}
	}
	return "document"
}

// classifyHTTPStatus maps transport-level failures: 429 and 5xx are
// retryable, other 4xx are permanent.
func classifyHTTPStatus(status int, message string) *Error {
	code := "http_" + strconv.Itoa(status)
	if status == http.StatusTooManyRequests || status >= 500 {
		return NewRetryableError(code, message)
	}
	return NewPermanentError(code, message)
}

func classifyGraphError(status int, ge *graphError) *Error {
	code := strconv.Itoa(ge.Code)
	// Graph code 4 is API throttling, 2 is a transient service error.
	if ge.Code == 4 || ge.Code == 2 || status == http.StatusTooManyRequests || status >= 500 {
		return NewRetryableError(code, ge.Message)
	}
	return NewPermanentError(code, ge.Message)
}

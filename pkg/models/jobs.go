package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// WebhookJobPayload is the unit of work on the webhook queue. The raw
// body is carried verbatim; parsing happens in the processor so a
// malformed payload fails the job, not the HTTP receiver.
type WebhookJobPayload struct {
	ChannelID  string    `json:"channelId"`
	RawPayload []byte    `json:"rawPayload"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// OutboundJobPayload is the unit of work on the outbound send queue.
type OutboundJobPayload struct {
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	ChannelID      string `json:"channelId"`
	ContactID      string `json:"contactId"`
}

// ToPayloadMap converts a typed job payload to the JSON map stored on
// the job row.
func ToPayloadMap(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job payload: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to convert job payload: %w", err)
	}
	return m, nil
}

// FromPayloadMap decodes the stored JSON map back into a typed payload.
func FromPayloadMap(m map[string]interface{}, v interface{}) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode job payload: %w", err)
	}
	return nil
}

// Package provider contains the messaging provider adapters. Each adapter
// normalizes the provider's webhook payloads into common event types and
// delivers outbound messages through the provider's send API.
package provider

import (
	"context"
	"fmt"
	"time"
)

// Kind identifies a messaging provider.
type Kind string

const (
	KindWhatsApp  Kind = "whatsapp"
	KindMessenger Kind = "messenger"
)

// InboundMessage is the normalized form of a message delivery.
type InboundMessage struct {
	Provider          Kind
	ProviderMessageID string
	SenderID          string // phone number or page-scoped ID
	SenderName        string
	Body              string
	MediaRef          string
	MediaType         string
	Timestamp         time.Time
}

// StatusUpdate is a normalized delivery or read receipt for outbound
// messages. Messenger reports reads as a watermark covering every
// outbound message sent at or before that instant, in which case
// ProviderMessageID is empty and Watermark is set.
type StatusUpdate struct {
	Provider          Kind
	ProviderMessageID string
	RecipientID       string
	Status            string // sent, delivered, read, failed
	Watermark         time.Time
	ErrorCode         string
	ErrorMessage      string
}

// Event is one normalized item extracted from a webhook payload.
// Exactly one field is set.
type Event struct {
	Message *InboundMessage
	Status  *StatusUpdate
}

// OutboundMessage is the provider-agnostic send request.
type OutboundMessage struct {
	RecipientID string
	Body        string
	MediaRef    string
	MediaType   string
}

// SendTarget carries the per-channel credentials for a send call,
// extracted from the channel's provider config.
type SendTarget struct {
	AccessToken   string
	PhoneNumberID string // WhatsApp
	PageID        string // Messenger
}

// SendResult reports a successful provider send.
type SendResult struct {
	ProviderMessageID string
}

// Adapter parses provider webhooks and sends outbound messages.
type Adapter interface {
	Kind() Kind

	// ExtractAddressingID pulls the provider-addressing identifier
	// (phone number ID or page ID) out of a webhook payload so ingest
	// can check the delivery actually belongs to the routed channel.
	ExtractAddressingID(body []byte) (string, error)

	ParseWebhook(body []byte) ([]Event, error)
	Send(ctx context.Context, target SendTarget, msg OutboundMessage) (*SendResult, error)
}

// Error is a classified provider failure. Retryable errors (timeouts,
// rate limits, provider 5xx) are worth another delivery attempt;
// permanent errors (bad recipient, policy violations) are not.
type Error struct {
	Code      string
	Message   string
	Retryable bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider error %s: %s", e.Code, e.Message)
}

// NewRetryableError creates a retryable provider error.
func NewRetryableError(code, message string) *Error {
	return &Error{Code: code, Message: message, Retryable: true}
}

// NewPermanentError creates a non-retryable provider error.
func NewPermanentError(code, message string) *Error {
	return &Error{Code: code, Message: message, Retryable: false}
}

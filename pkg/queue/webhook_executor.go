package queue

import (
	"context"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/pkg/models"
	"github.com/omniboxhq/omnibox/pkg/services"
)

// WebhookExecutor processes one queued webhook delivery.
type WebhookExecutor struct {
	webhooks *services.WebhookService
}

// NewWebhookExecutor creates a new WebhookExecutor.
func NewWebhookExecutor(webhooks *services.WebhookService) *WebhookExecutor {
	return &WebhookExecutor{webhooks: webhooks}
}

// Execute decodes the job payload and runs it through the webhook
// processor. A decode failure is a validation error and dead-letters
// the job immediately.
func (e *WebhookExecutor) Execute(ctx context.Context, j *ent.Job) error {
	var payload models.WebhookJobPayload
	if err := models.FromPayloadMap(j.Payload, &payload); err != nil {
		return services.NewValidationError("payload", err.Error())
	}
	return e.webhooks.ProcessPayload(ctx, payload.ChannelID, payload.RawPayload)
}

package channel

import (
	"context"
	"net/http"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"
)

// webhookSender posts the notification payload to the destination URL itself;
// there is no intermediary provider.
type webhookSender struct {
	client *http.Client
}

func NewWebhookSender(cfg config.ProviderConfig) commands.ChannelSender {
	return &webhookSender{client: &http.Client{Timeout: cfg.HTTPTimeout}}
}

func (s *webhookSender) Channel() notification.Channel { return notification.ChannelWebhook }

func (s *webhookSender) Send(ctx context.Context, n *notification.Notification) (*commands.SendResult, error) {
	payload := map[string]any{
		"id":         n.ID,
		"event_type": n.EventType,
		"subject":    n.Subject,
		"body":       n.Body,
		"metadata":   n.Metadata,
		"sent_at":    time.Now().UTC(),
	}
	if n.EventID != nil {
		payload["event_id"] = *n.EventID
	}

	_, raw, err := postJSON(ctx, s.client, n.Destination, apiKeyFromConfig(n), payload)
	if err != nil {
		return nil, err
	}
	return &commands.SendResult{ExternalID: n.ID.String(), ProviderResponse: raw}, nil
}

// apiKeyFromConfig lets callers attach a bearer token for their endpoint via
// the per-notification delivery config.
func apiKeyFromConfig(n *notification.Notification) string {
	if n.DeliveryConfig == nil {
		return ""
	}
	return n.DeliveryConfig["auth_token"]
}

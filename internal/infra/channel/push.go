package channel

import (
	"context"
	"net/http"

	"support-notify/internal/domain/notification"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"
)

type pushSender struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewPushSender(cfg config.ProviderConfig) commands.ChannelSender {
	return &pushSender{
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
		endpoint: cfg.PushEndpoint,
		apiKey:   cfg.PushAPIKey,
	}
}

func (s *pushSender) Channel() notification.Channel { return notification.ChannelPush }

func (s *pushSender) Send(ctx context.Context, n *notification.Notification) (*commands.SendResult, error) {
	if s.endpoint == "" {
		return nil, commands.Permanent(notification.ErrInvalidChannel)
	}

	payload := map[string]any{
		"device_token": n.Destination,
		"title":        n.Subject,
		"body":         n.Body,
		"data":         n.Metadata,
	}

	pr, raw, err := postJSON(ctx, s.client, s.endpoint, s.apiKey, payload)
	if err != nil {
		return nil, err
	}
	return &commands.SendResult{ExternalID: pr.MessageID, ProviderResponse: raw}, nil
}

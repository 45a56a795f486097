package channel

import (
	"context"
	"net/http"

	"support-notify/internal/domain/notification"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"
)

type smsSender struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewSMSSender(cfg config.ProviderConfig) commands.ChannelSender {
	return &smsSender{
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
		endpoint: cfg.SMSEndpoint,
		apiKey:   cfg.SMSAPIKey,
	}
}

func (s *smsSender) Channel() notification.Channel { return notification.ChannelSMS }

func (s *smsSender) Send(ctx context.Context, n *notification.Notification) (*commands.SendResult, error) {
	if s.endpoint == "" {
		return nil, commands.Permanent(notification.ErrInvalidChannel)
	}

	payload := map[string]any{
		"to":   n.Destination,
		"text": n.Body,
	}
	if n.Sender != nil && *n.Sender != "" {
		payload["from"] = *n.Sender
	}

	pr, raw, err := postJSON(ctx, s.client, s.endpoint, s.apiKey, payload)
	if err != nil {
		return nil, err
	}
	return &commands.SendResult{ExternalID: pr.MessageID, ProviderResponse: raw}, nil
}

package request

import (
	"strings"

	"support-notify/internal/domain/notification"
	"support-notify/internal/usecase/commands"
)

type DeliveryFeedbackRequest struct {
	ExternalID string `json:"external_id" binding:"required"`
	Event      string `json:"event" binding:"required"`
	Reason     string `json:"reason,omitempty"`
}

func (r DeliveryFeedbackRequest) ToCommand() (commands.FeedbackRequest, error) {
	event, err := notification.NewFeedbackEvent(strings.ToLower(strings.TrimSpace(r.Event)))
	if err != nil {
		return commands.FeedbackRequest{}, err
	}
	return commands.FeedbackRequest{
		ExternalID: strings.TrimSpace(r.ExternalID),
		Event:      event,
		Reason:     r.Reason,
	}, nil
}

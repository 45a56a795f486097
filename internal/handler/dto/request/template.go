package request

import (
	"strings"

	"support-notify/internal/domain/notification"
	"support-notify/internal/usecase/commands"
)

type CreateTemplateRequest struct {
	Name        string  `json:"name" binding:"required"`
	DisplayName string  `json:"display_name,omitempty"`
	Description string  `json:"description,omitempty"`
	Channel     string  `json:"channel" binding:"required"`
	EventType   string  `json:"event_type,omitempty"`
	Subject     string  `json:"subject,omitempty"`
	Body        string  `json:"body" binding:"required"`
	HTMLBody    *string `json:"html_body,omitempty"`
	Language    string  `json:"language,omitempty"`
	IsDefault   bool    `json:"is_default,omitempty"`
}

func (r CreateTemplateRequest) ToCommand() (commands.CreateTemplateRequest, error) {
	channel, err := notification.NewChannel(strings.ToLower(strings.TrimSpace(r.Channel)))
	if err != nil {
		return commands.CreateTemplateRequest{}, err
	}
	return commands.CreateTemplateRequest{
		Name:        r.Name,
		DisplayName: r.DisplayName,
		Description: r.Description,
		Channel:     channel,
		EventType:   r.EventType,
		Subject:     r.Subject,
		Body:        r.Body,
		HTMLBody:    r.HTMLBody,
		Language:    r.Language,
		IsDefault:   r.IsDefault,
	}, nil
}

type UpdateTemplateRequest struct {
	Subject  *string `json:"subject,omitempty"`
	Body     *string `json:"body,omitempty"`
	HTMLBody *string `json:"html_body,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r UpdateTemplateRequest) ToCommand() commands.UpdateTemplateRequest {
	return commands.UpdateTemplateRequest{
		Subject:  r.Subject,
		Body:     r.Body,
		HTMLBody: r.HTMLBody,
		IsActive: r.IsActive,
	}
}

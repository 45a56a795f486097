package response

import (
	"time"

	"support-notify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TemplateResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Channel     string    `json:"channel"`
	EventType   string    `json:"event_type,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	HTMLBody    *string   `json:"html_body,omitempty"`
	Language    string    `json:"language"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	Version     int32     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTemplateView(view *queries.TemplateView) *TemplateResponse {
	var resp TemplateResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTemplateList(views []*queries.TemplateView) []*TemplateResponse {
	resp := make([]*TemplateResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromTemplateView(v))
	}
	return resp
}

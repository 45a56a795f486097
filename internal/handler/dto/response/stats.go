package response

import (
	"time"

	"support-notify/internal/usecase/queries"
)

type StatsResponse struct {
	TenantID       string           `json:"tenant_id"`
	Total          int64            `json:"total"`
	Pending        int64            `json:"pending"`
	Sent           int64            `json:"sent"`
	Failed         int64            `json:"failed"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByChannel      map[string]int64 `json:"by_channel"`
	DeliveryRate   float64          `json:"delivery_rate"`
	EngagementRate float64          `json:"engagement_rate"`
	WindowStart    time.Time        `json:"window_start"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

func FromStatsView(view *queries.StatsView) *StatsResponse {
	byStatus := make(map[string]int64, len(view.ByStatus))
	for _, c := range view.ByStatus {
		byStatus[c.Status] = c.Count
	}
	byChannel := make(map[string]int64, len(view.ByChannel))
	for _, c := range view.ByChannel {
		byChannel[c.Channel] = c.Count
	}
	return &StatsResponse{
		TenantID:       view.TenantID,
		Total:          view.Total,
		Pending:        view.Pending,
		Sent:           view.Sent,
		Failed:         view.Failed,
		ByStatus:       byStatus,
		ByChannel:      byChannel,
		DeliveryRate:   view.DeliveryRate,
		EngagementRate: view.EngagementRate,
		WindowStart:    view.WindowStart,
		GeneratedAt:    view.GeneratedAt,
	}
}

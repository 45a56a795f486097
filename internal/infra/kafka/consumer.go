package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/pkg/config"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// platformEvent is the envelope the ticketing platform publishes for events
// that should trigger notifications.
type platformEvent struct {
	TenantID       string            `json:"tenant_id"`
	EventType      string            `json:"event_type"`
	EventID        *uuid.UUID        `json:"event_id,omitempty"`
	RecipientID    uuid.UUID         `json:"recipient_id"`
	RecipientEmail string            `json:"recipient_email"`
	RecipientName  string            `json:"recipient_name,omitempty"`
	Channel        string            `json:"channel"`
	Priority       string            `json:"priority,omitempty"`
	Destination    string            `json:"destination"`
	Subject        string            `json:"subject,omitempty"`
	Body           string            `json:"body,omitempty"`
	Language       string            `json:"language,omitempty"`
	ScheduledAt    *time.Time        `json:"scheduled_at,omitempty"`
	Variables      map[string]string `json:"variables,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type Consumer struct {
	reader        *kafka.Reader
	notifications commands.NotificationCommands
	logger        *slog.Logger
}

func NewConsumer(cfg config.KafkaConfig, notifications commands.NotificationCommands, logger *slog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	return &Consumer{reader: reader, notifications: notifications, logger: logger}
}

// Start consumes platform events until ctx is cancelled. Malformed messages
// are logged and skipped; a poison message must not stall the partition.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("starting platform event consumer")

	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("stopping platform event consumer")
				return c.reader.Close()
			}
			c.logger.Error("failed to read platform event", "error", err)
			continue
		}

		if err := c.processMessage(ctx, message); err != nil {
			c.logger.Error("failed to process platform event",
				"topic", message.Topic,
				"partition", message.Partition,
				"offset", message.Offset,
				"error", err,
			)
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, message kafka.Message) error {
	var event platformEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return errs.Wrap(err, "failed to decode platform event")
	}
	if event.TenantID == "" {
		return errs.New("platform event missing tenant id")
	}

	channel, err := notification.NewChannel(event.Channel)
	if err != nil {
		return err
	}
	priority, err := notification.NewPriority(event.Priority)
	if err != nil {
		return err
	}

	result, err := c.notifications.Create(ctx, event.TenantID, commands.CreateNotificationRequest{
		RecipientID:       event.RecipientID,
		RecipientEmail:    event.RecipientEmail,
		RecipientName:     event.RecipientName,
		Channel:           channel,
		Priority:          priority,
		EventType:         event.EventType,
		EventID:           event.EventID,
		Subject:           event.Subject,
		Body:              event.Body,
		Destination:       event.Destination,
		Language:          event.Language,
		ScheduledAt:       event.ScheduledAt,
		Metadata:          event.Metadata,
		TemplateVariables: event.Variables,
	})
	if err != nil {
		return err
	}

	c.logger.Info("platform event accepted",
		"tenant_id", event.TenantID,
		"event_type", event.EventType,
		"notification_id", result.NotificationID,
	)
	return nil
}

func (c *Consumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}

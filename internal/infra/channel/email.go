package channel

import (
	"context"
	"fmt"

	"support-notify/internal/domain/notification"
	"support-notify/internal/pkg/config"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/usecase/commands"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// MessageDialer is the slice of gomail.Dialer used by the email sender;
// injecting it keeps SMTP out of tests.
type MessageDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailSender struct {
	dialer MessageDialer
	from   string
}

func NewEmailSender(cfg config.SMTPConfig) commands.ChannelSender {
	return &emailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// NewEmailSenderWithDialer wires a custom dialer, used in tests.
func NewEmailSenderWithDialer(dialer MessageDialer, from string) commands.ChannelSender {
	return &emailSender{dialer: dialer, from: from}
}

func (s *emailSender) Channel() notification.Channel { return notification.ChannelEmail }

func (s *emailSender) Send(ctx context.Context, n *notification.Notification) (*commands.SendResult, error) {
	if n.Destination == "" {
		return nil, commands.Permanent(notification.ErrMissingDestination)
	}

	m := gomail.NewMessage()
	from := s.from
	if n.Sender != nil && *n.Sender != "" {
		from = *n.Sender
	}
	m.SetHeader("From", from)
	if n.RecipientName != "" {
		m.SetHeader("To", m.FormatAddress(n.Destination, n.RecipientName))
	} else {
		m.SetHeader("To", n.Destination)
	}
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", n.Body)
	if n.HTMLBody != nil && *n.HTMLBody != "" {
		m.AddAlternative("text/html", *n.HTMLBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return nil, errs.Wrap(err, "smtp send failed")
	}

	// SMTP acceptance has no provider message id; synthesize one so delivery
	// feedback can still correlate.
	externalID := fmt.Sprintf("smtp-%s", uuid.New())
	return &commands.SendResult{
		ExternalID:       externalID,
		ProviderResponse: "accepted by smtp relay",
	}, nil
}

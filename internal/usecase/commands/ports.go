package commands

import (
	"context"
	"errors"

	"support-notify/internal/domain/notification"
	"support-notify/internal/domain/template"
)

// SendResult is a channel provider's acknowledgement of one transmission.
type SendResult struct {
	ExternalID       string
	ProviderResponse string
}

// ChannelSender performs the wire-level transmission for one channel. Errors
// default to transient; wrap with Permanent to short-circuit retries.
type ChannelSender interface {
	Channel() notification.Channel
	Send(ctx context.Context, n *notification.Notification) (*SendResult, error)
}

// SenderRegistry resolves the sender matching a notification's channel.
type SenderRegistry map[notification.Channel]ChannelSender

func NewSenderRegistry(senders ...ChannelSender) SenderRegistry {
	reg := make(SenderRegistry, len(senders))
	for _, s := range senders {
		reg[s.Channel()] = s
	}
	return reg
}

// permanentError marks a send failure that no retry can recover from
// (invalid address, rejected recipient).
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so IsPermanent reports true.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether a send error was classified as unrecoverable.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

// RenderedContent is the output of template variable substitution.
type RenderedContent struct {
	Subject  string
	Body     string
	HTMLBody *string
}

// TemplateResolver finds and renders templates for outbound notifications.
type TemplateResolver interface {
	// Resolve returns the active default template for the tuple, falling
	// back to the base language when a language-specific lookup misses.
	// A nil template with nil error means none is configured.
	Resolve(ctx context.Context, tenantID, eventType string, channel notification.Channel, language string) (*template.Template, error)

	// Render substitutes variables into the template content. Missing
	// variables render as empty strings, never as errors.
	Render(t *template.Template, vars map[string]string) RenderedContent
}

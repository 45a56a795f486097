package notification

import "errors"

var (
	ErrInvalidChannel     = errors.New("invalid notification channel")
	ErrInvalidPriority    = errors.New("invalid notification priority")
	ErrInvalidStatus      = errors.New("invalid notification status")
	ErrMissingRecipient   = errors.New("recipient is required")
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingContent     = errors.New("subject/body or template reference is required")
	ErrInvalidMaxAttempts = errors.New("max attempts out of range")
	ErrNotPending         = errors.New("notification is not pending")
	ErrNotProcessing      = errors.New("notification is not processing")
	ErrNotCancellable     = errors.New("notification can no longer be cancelled")
	ErrNotExpirable       = errors.New("notification is not eligible for expiry")
	ErrAttemptsExhausted  = errors.New("delivery attempts exhausted")
)

type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelPush    Channel = "push"
	ChannelSMS     Channel = "sms"
	ChannelWebhook Channel = "webhook"
)

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelPush, ChannelSMS, ChannelWebhook:
		return true
	default:
		return false
	}
}

func NewChannel(s string) (Channel, error) {
	c := Channel(s)
	if !c.IsValid() {
		return "", ErrInvalidChannel
	}
	return c, nil
}

// RequiresSubject reports whether rendered content for the channel must carry
// a subject (email subject line, push title).
func (c Channel) RequiresSubject() bool {
	return c == ChannelEmail || c == ChannelPush
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityUrgent   Priority = "urgent"
	PriorityCritical Priority = "critical"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent, PriorityCritical:
		return true
	default:
		return false
	}
}

func NewPriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Weight orders priorities for scheduling; higher dispatches first.
func (p Priority) Weight() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityNormal:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	case PriorityCritical:
		return 5
	default:
		return 0
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusDelivered  Status = "delivered"
	StatusFailed     Status = "failed"
	StatusBounced    Status = "bounced"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
	StatusExpired    Status = "expired"
	StatusOpened     Status = "opened"
	StatusClicked    Status = "clicked"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusSent, StatusDelivered,
		StatusFailed, StatusBounced, StatusRejected, StatusCancelled,
		StatusExpired, StatusOpened, StatusClicked:
		return true
	default:
		return false
	}
}

// TerminalStatuses are statuses from which the scheduler never picks a record
// up again. FAILED appears here because a retryable failure is reverted to
// PENDING; a record still carrying FAILED has exhausted its attempts.
var TerminalStatuses = []Status{
	StatusSent, StatusDelivered, StatusOpened, StatusClicked,
	StatusFailed, StatusBounced, StatusRejected, StatusCancelled, StatusExpired,
}

// FeedbackEvent is an asynchronous delivery-status callback from a provider.
type FeedbackEvent string

const (
	FeedbackDelivered FeedbackEvent = "delivered"
	FeedbackOpened    FeedbackEvent = "opened"
	FeedbackClicked   FeedbackEvent = "clicked"
	FeedbackBounced   FeedbackEvent = "bounced"
	FeedbackFailed    FeedbackEvent = "failed"
)

func (e FeedbackEvent) IsValid() bool {
	switch e {
	case FeedbackDelivered, FeedbackOpened, FeedbackClicked, FeedbackBounced, FeedbackFailed:
		return true
	default:
		return false
	}
}

func NewFeedbackEvent(s string) (FeedbackEvent, error) {
	e := FeedbackEvent(s)
	if !e.IsValid() {
		return "", ErrInvalidStatus
	}
	return e, nil
}

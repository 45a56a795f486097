package notification

import "time"

// retryDelays is the backoff table keyed by the attempt that just failed:
// 1min, 5min, 15min, 1h, then 4h for every later attempt.
var retryDelays = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	60 * time.Minute,
}

const maxRetryDelay = 240 * time.Minute

// RetryDelay returns the delay before the retry following the given failed
// attempt number (1-based).
func RetryDelay(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if int(attempt) <= len(retryDelays) {
		return retryDelays[attempt-1]
	}
	return maxRetryDelay
}

// MarkProcessing begins a send attempt: PENDING -> PROCESSING, incrementing
// the attempt counter and clearing any retry schedule. The store layer is
// responsible for making this transition atomic against concurrent workers;
// here it only guards validity.
func (n *Notification) MarkProcessing(now time.Time) error {
	if !n.IsPending() {
		return ErrNotPending
	}
	if n.AttemptCount >= n.MaxAttempts {
		return ErrAttemptsExhausted
	}
	n.Status = StatusProcessing
	n.AttemptCount++
	n.NextRetryAt = nil
	n.UpdatedAt = now
	return nil
}

// MarkSent records a successful hand-off to the provider.
func (n *Notification) MarkSent(now time.Time, externalID, providerResponse string) error {
	if !n.IsProcessing() {
		return ErrNotProcessing
	}
	n.Status = StatusSent
	n.SentAt = &now
	n.ExternalID = &externalID
	if providerResponse != "" {
		n.ProviderResponse = &providerResponse
	}
	n.LastError = nil
	n.UpdatedAt = now
	return nil
}

// MarkFailed records a failed send attempt. A transient failure with attempts
// remaining schedules a retry and reverts the record to PENDING; a permanent
// failure is REJECTED and never retried; exhausted attempts leave the record
// terminally FAILED.
func (n *Notification) MarkFailed(now time.Time, errMsg string, permanent bool) error {
	if !n.IsProcessing() {
		return ErrNotProcessing
	}
	n.LastError = &errMsg
	n.UpdatedAt = now

	if permanent {
		n.Status = StatusRejected
		n.NextRetryAt = nil
		return nil
	}

	n.Status = StatusFailed
	if n.AttemptCount < n.MaxAttempts {
		next := now.Add(RetryDelay(n.AttemptCount))
		n.NextRetryAt = &next
		n.Status = StatusPending
	} else {
		n.NextRetryAt = nil
	}
	return nil
}

// MarkDelivered applies a provider DELIVERED callback. Idempotent.
func (n *Notification) MarkDelivered(now time.Time) {
	if n.DeliveredAt != nil {
		return
	}
	n.DeliveredAt = &now
	if n.Status == StatusSent {
		n.Status = StatusDelivered
	}
	n.UpdatedAt = now
}

// MarkOpened applies a provider OPENED callback. An open implies prior
// delivery, so deliveredAt is backfilled when absent. Idempotent.
func (n *Notification) MarkOpened(now time.Time) {
	if n.OpenedAt != nil {
		return
	}
	n.OpenedAt = &now
	if n.DeliveredAt == nil {
		n.DeliveredAt = &now
	}
	if n.Status == StatusSent || n.Status == StatusDelivered {
		n.Status = StatusOpened
	}
	n.UpdatedAt = now
}

// MarkClicked applies a provider CLICKED callback. A click implies an open
// (and an open implies delivery), so both timestamps are backfilled when
// absent. Idempotent.
func (n *Notification) MarkClicked(now time.Time) {
	if n.ClickedAt != nil {
		return
	}
	n.ClickedAt = &now
	if n.OpenedAt == nil {
		n.OpenedAt = &now
	}
	if n.DeliveredAt == nil {
		n.DeliveredAt = &now
	}
	if n.IsSent() {
		n.Status = StatusClicked
	}
	n.UpdatedAt = now
}

// MarkBounced applies a hard-bounce callback. Terminal, never retried.
func (n *Notification) MarkBounced(now time.Time, reason string) {
	if n.IsTerminal() && n.Status != StatusSent {
		return
	}
	n.Status = StatusBounced
	n.NextRetryAt = nil
	if reason != "" {
		n.LastError = &reason
	}
	n.UpdatedAt = now
}

// MarkFeedbackFailed applies a provider FAILED callback after a send. Unlike
// a dispatch failure this never schedules a retry: the provider already
// accepted the message once.
func (n *Notification) MarkFeedbackFailed(now time.Time, reason string) {
	if n.IsTerminal() && n.Status != StatusSent {
		return
	}
	n.Status = StatusFailed
	n.NextRetryAt = nil
	if reason != "" {
		n.LastError = &reason
	}
	n.UpdatedAt = now
}

// Cancel stops a notification that has not completed a send. Only legal while
// PENDING or PROCESSING; an in-flight attempt cannot be aborted, but a later
// result must not re-activate a cancelled record.
func (n *Notification) Cancel(now time.Time) error {
	if !n.IsPending() && !n.IsProcessing() {
		return ErrNotCancellable
	}
	n.Status = StatusCancelled
	n.NextRetryAt = nil
	n.UpdatedAt = now
	return nil
}

// Expire force-expires a stale scheduled record found by the expiry sweep.
func (n *Notification) Expire(now time.Time) error {
	if !n.IsExpired(now) {
		return ErrNotExpirable
	}
	n.Status = StatusExpired
	n.NextRetryAt = nil
	n.UpdatedAt = now
	return nil
}

// DeliveryTime is the latency from creation to provider hand-off.
func (n *Notification) DeliveryTime() *time.Duration {
	if n.SentAt == nil {
		return nil
	}
	d := n.SentAt.Sub(n.CreatedAt)
	return &d
}

//go:build unit

package channel_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-notify/internal/domain/notification"
	"support-notify/internal/infra/channel"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"
	"support-notify/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smsNotification() *notification.Notification {
	from := "SupportDesk"
	return builder.NewNotificationBuilder().
		WithChannel(notification.ChannelSMS).
		With(func(b *builder.NotificationBuilder) {
			b.Destination = "+15551234567"
			b.Sender = &from
		}).
		MustBuildDomain()
}

func providerServer(t *testing.T, status int, body string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

// ================================================================================
// TestSMSSender
// ================================================================================

func TestSMSSenderSend(t *testing.T) {
	t.Run("success returns the provider message id", func(t *testing.T) {
		var payload map[string]any
		srv := providerServer(t, http.StatusOK, `{"message_id":"sms-789","status":"queued"}`, &payload)
		defer srv.Close()

		sender := channel.NewSMSSender(config.ProviderConfig{SMSEndpoint: srv.URL, SMSAPIKey: "key-1"})
		require.Equal(t, notification.ChannelSMS, sender.Channel())

		result, err := sender.Send(context.Background(), smsNotification())
		require.NoError(t, err)
		assert.Equal(t, "sms-789", result.ExternalID)
		assert.Equal(t, "+15551234567", payload["to"])
		assert.Equal(t, "SupportDesk", payload["from"])
	})

	t.Run("api key is sent as a bearer token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"message_id":"sms-1"}`)
		}))
		defer srv.Close()

		sender := channel.NewSMSSender(config.ProviderConfig{SMSEndpoint: srv.URL, SMSAPIKey: "key-1"})
		_, err := sender.Send(context.Background(), smsNotification())
		require.NoError(t, err)
	})

	t.Run("4xx rejections are permanent", func(t *testing.T) {
		srv := providerServer(t, http.StatusBadRequest, `{"error":"invalid number"}`, nil)
		defer srv.Close()

		sender := channel.NewSMSSender(config.ProviderConfig{SMSEndpoint: srv.URL})
		_, err := sender.Send(context.Background(), smsNotification())
		require.Error(t, err)
		assert.True(t, commands.IsPermanent(err))
	})

	t.Run("429 throttling is retryable", func(t *testing.T) {
		srv := providerServer(t, http.StatusTooManyRequests, `{"error":"slow down"}`, nil)
		defer srv.Close()

		sender := channel.NewSMSSender(config.ProviderConfig{SMSEndpoint: srv.URL})
		_, err := sender.Send(context.Background(), smsNotification())
		require.Error(t, err)
		assert.False(t, commands.IsPermanent(err))
	})

	t.Run("5xx outages are retryable", func(t *testing.T) {
		srv := providerServer(t, http.StatusServiceUnavailable, `upstream down`, nil)
		defer srv.Close()

		sender := channel.NewSMSSender(config.ProviderConfig{SMSEndpoint: srv.URL})
		_, err := sender.Send(context.Background(), smsNotification())
		require.Error(t, err)
		assert.False(t, commands.IsPermanent(err))
	})

	t.Run("missing endpoint is a permanent misconfiguration", func(t *testing.T) {
		sender := channel.NewSMSSender(config.ProviderConfig{})
		_, err := sender.Send(context.Background(), smsNotification())
		require.Error(t, err)
		assert.True(t, commands.IsPermanent(err))
	})
}

// ================================================================================
// TestPushSender
// ================================================================================

func TestPushSenderSend(t *testing.T) {
	pushed := builder.NewNotificationBuilder().
		WithChannel(notification.ChannelPush).
		With(func(b *builder.NotificationBuilder) {
			b.Destination = "device-token-abc"
			b.Subject = "Ticket T-100 created"
			b.Body = "A new ticket was assigned to you."
		}).
		MustBuildDomain()

	t.Run("success posts title and device token", func(t *testing.T) {
		var payload map[string]any
		srv := providerServer(t, http.StatusOK, `{"message_id":"push-42","status":"accepted"}`, &payload)
		defer srv.Close()

		sender := channel.NewPushSender(config.ProviderConfig{PushEndpoint: srv.URL})
		require.Equal(t, notification.ChannelPush, sender.Channel())

		result, err := sender.Send(context.Background(), pushed)
		require.NoError(t, err)
		assert.Equal(t, "push-42", result.ExternalID)
		assert.Equal(t, "device-token-abc", payload["device_token"])
		assert.Equal(t, "Ticket T-100 created", payload["title"])
	})

	t.Run("opaque success body is accepted", func(t *testing.T) {
		srv := providerServer(t, http.StatusOK, `OK`, nil)
		defer srv.Close()

		sender := channel.NewPushSender(config.ProviderConfig{PushEndpoint: srv.URL})
		result, err := sender.Send(context.Background(), pushed)
		require.NoError(t, err)
		assert.Empty(t, result.ExternalID)
	})
}

// ================================================================================
// TestWebhookSender
// ================================================================================

func TestWebhookSenderSend(t *testing.T) {
	t.Run("posts the event payload to the destination url", func(t *testing.T) {
		var payload map[string]any
		var authHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			fmt.Fprint(w, `{"status":"received"}`)
		}))
		defer srv.Close()

		n := builder.NewNotificationBuilder().
			WithChannel(notification.ChannelWebhook).
			With(func(b *builder.NotificationBuilder) {
				b.Destination = srv.URL
			}).
			MustBuildDomain()
		n.DeliveryConfig = map[string]string{"auth_token": "hook-secret"}

		sender := channel.NewWebhookSender(config.ProviderConfig{})
		require.Equal(t, notification.ChannelWebhook, sender.Channel())

		result, err := sender.Send(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, n.ID.String(), result.ExternalID)
		assert.Equal(t, "Bearer hook-secret", authHeader)
		assert.Equal(t, "ticket.created", payload["event_type"])
	})

	t.Run("endpoint 404 is permanent", func(t *testing.T) {
		srv := providerServer(t, http.StatusNotFound, `gone`, nil)
		defer srv.Close()

		n := builder.NewNotificationBuilder().
			WithChannel(notification.ChannelWebhook).
			With(func(b *builder.NotificationBuilder) {
				b.Destination = srv.URL
			}).
			MustBuildDomain()

		sender := channel.NewWebhookSender(config.ProviderConfig{})
		_, err := sender.Send(context.Background(), n)
		require.Error(t, err)
		assert.True(t, commands.IsPermanent(err))
	})
}

// ================================================================================
// TestIsPermanentClassification
// ================================================================================

func TestProviderStatusClassification(t *testing.T) {
	cases := []struct {
		status    int
		permanent bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, true},
		{http.StatusNotFound, true},
		{http.StatusUnprocessableEntity, true},
		{http.StatusRequestTimeout, false},
		{http.StatusTooManyRequests, false},
		{http.StatusInternalServerError, false},
		{http.StatusBadGateway, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			srv := providerServer(t, tc.status, `{}`, nil)
			defer srv.Close()

			sender := channel.NewSMSSender(config.ProviderConfig{SMSEndpoint: srv.URL})
			_, err := sender.Send(context.Background(), smsNotification())
			require.Error(t, err)
			assert.Equal(t, tc.permanent, commands.IsPermanent(err))
		})
	}
}

//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"support-notify/internal/handler/middleware"
	"support-notify/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.LogConfig{Level: "info", TimeFormat: "2006-01-02 15:04:05.000"}

	t.Run("writes request logs through the supplied logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		r := gin.New()
		r.Use(middleware.LoggingMiddleware(logger, cfg))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.TenantHeader, "acme")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		out := buf.String()
		assert.Contains(t, out, "Request started")
		assert.Contains(t, out, "Request completed")
		assert.Contains(t, out, "path=/ping")
		assert.Contains(t, out, "tenant_id=acme")
	})

	t.Run("request id is exposed to downstream handlers", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

		var requestID string
		r := gin.New()
		r.Use(middleware.LoggingMiddleware(logger, cfg))
		r.GET("/ping", func(c *gin.Context) {
			requestID = middleware.GetRequestID(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, requestID)
	})
}

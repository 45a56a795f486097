//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"support-notify/internal/handler/middleware"
	"support-notify/internal/pkg/config"
	"support-notify/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CallbackAuthTestSuite struct {
	suite.Suite
	secret string
	router *gin.Engine
}

func (s *CallbackAuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.secret = "callback-test-secret"
	s.router = s.newRouter(s.secret)
}

func (s *CallbackAuthTestSuite) newRouter(secret string) *gin.Engine {
	r := gin.New()
	auth := middleware.NewCallbackAuth(config.CallbackConfig{Secret: secret})
	r.POST("/feedback", auth.VerifySignature(), func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	})
	return r
}

func (s *CallbackAuthTestSuite) signedToken(secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "provider",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(s.T(), err)
	return signed
}

func TestCallbackAuthSuite(t *testing.T) {
	suite.Run(t, new(CallbackAuthTestSuite))
}

// ================================================================================
// TestVerifySignature
// ================================================================================

func (s *CallbackAuthTestSuite) TestVerifySignature() {
	url := "/feedback"

	s.Run("valid signature passes", func() {
		headers := map[string]string{"Authorization": "Bearer " + s.signedToken(s.secret)}
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "acme", headers)
		s.Equal(http.StatusAccepted, w.Code)
	})

	s.Run("missing token returns 401", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "acme", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Callback signature required")
	})

	s.Run("token signed with a different secret returns 401", func() {
		headers := map[string]string{"Authorization": "Bearer " + s.signedToken("some-other-secret")}
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "acme", headers)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid callback signature")
	})

	s.Run("malformed token returns 401", func() {
		headers := map[string]string{"Authorization": "Bearer not.a.token"}
		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, "acme", headers)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid callback signature")
	})

	s.Run("empty secret disables verification", func() {
		open := s.newRouter("")
		w := httptest.PerformRequestWithHeaders(s.T(), open, http.MethodPost, url, nil, "acme", nil)
		s.Equal(http.StatusAccepted, w.Code)
	})
}

// ================================================================================
// TestRequireTenant
// ================================================================================

func TestRequireTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scoped", middleware.RequireTenant(), func(c *gin.Context) {
		id, ok := middleware.GetTenantID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"tenant_id": id})
	})

	t.Run("header is propagated into the request context", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/scoped", nil, "acme")
		var resp map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, "acme", resp["tenant_id"])
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/scoped", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing X-Tenant-ID header")
	})

	t.Run("blank header is rejected", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/scoped", nil, "   ")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing X-Tenant-ID header")
	})
}

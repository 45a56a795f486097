package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"support-notify/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CallbackAuth verifies the signed token providers attach to delivery
// feedback callbacks. An empty secret disables the check, for providers that
// cannot sign and for local development.
type CallbackAuth struct {
	secret []byte
}

func NewCallbackAuth(cfg config.CallbackConfig) *CallbackAuth {
	return &CallbackAuth{secret: []byte(cfg.Secret)}
}

func (m *CallbackAuth) VerifySignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.secret) == 0 {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Callback signature required"},
			})
			c.Abort()
			return
		}

		_, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			slog.Warn("callback signature verification failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid callback signature"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

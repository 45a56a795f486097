package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the tenant scope of every API request. The gateway in
// front of this service resolves authentication to a tenant and injects it.
const TenantHeader = "X-Tenant-ID"

const ctxTenantIDKey = "tenant_id"

// RequireTenant rejects requests without a tenant scope. Every data-plane
// route runs behind it; there is no cross-tenant access path.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenantID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"message": "Missing " + TenantHeader + " header"},
			})
			c.Abort()
			return
		}

		c.Set(ctxTenantIDKey, tenantID)
		c.Next()
	}
}

func GetTenantID(c *gin.Context) (string, bool) {
	tenantID, exists := c.Get(ctxTenantIDKey)
	if !exists {
		return "", false
	}
	id, ok := tenantID.(string)
	return id, ok && id != ""
}

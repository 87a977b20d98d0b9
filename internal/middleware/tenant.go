package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"petshop/internal/domain"
)

const tenantKey = "tenant"

// TenantResolver looks up an active tenant by its routing subdomain.
type TenantResolver interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// Tenant resolves the acting tenant from the request host and stores it in
// the Gin context. Every downstream handler reads it via TenantFromContext
// and passes it to services explicitly; there is no ambient tenant state.
func Tenant(resolver TenantResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		if i := strings.Index(host, ":"); i >= 0 {
			host = host[:i]
		}

		var subdomain string
		if host == "127.0.0.1" || host == "localhost" {
			subdomain = "localhost"
		} else {
			subdomain = strings.Split(host, ".")[0]
		}

		tenant, err := resolver.GetBySubdomain(c.Request.Context(), subdomain)
		if err != nil || tenant == nil || !tenant.IsActive {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TENANT_NOT_FOUND",
					"message": "Tenant não encontrado",
				},
			})
			return
		}

		c.Set(tenantKey, tenant)
		c.Next()
	}
}

// TenantFromContext returns the tenant resolved by the Tenant middleware.
func TenantFromContext(c *gin.Context) (*domain.Tenant, bool) {
	v, ok := c.Get(tenantKey)
	if !ok {
		return nil, false
	}
	tenant, ok := v.(*domain.Tenant)
	return tenant, ok
}

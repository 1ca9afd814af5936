package middleware

import (
	"net/http"

	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group on the resolved portal role. The resolver
// is fail-open (unknown identities act as plain users), so routes gated on
// RoleUser accept everyone who is authenticated.
func RequireRole(roles *service.RoleService, allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := roles.RoleFor(c.Request.Context(), UserID(c))
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not permitted"})
	}
}

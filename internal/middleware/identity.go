package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studenthub/internal/pkg/jwt"
	"studenthub/internal/pkg/response"
)

// Identity resolves the caller and stores their ID in the context. The
// X-User-Id header from the gateway wins; otherwise the Bearer token's
// subject is used. Requests without either are rejected.
//
// Admin rights are never taken from here; see RequireAdmin.
func Identity(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader("X-User-Id")); id != "" {
			c.Set("user_id", id)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID())
		c.Next()
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studenthub/internal/domain/user"
	"studenthub/internal/pkg/response"
)

// RequireAdmin allows only users whose stored profile carries the admin
// flag. The flag is always read from the database, never from the token.
func RequireAdmin(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, _ := c.Get("user_id")
		id, _ := v.(string)
		if id == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				response.Error(c, http.StatusForbidden, "FORBIDDEN", "admin access required")
			} else {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to resolve user")
			}
			c.Abort()
			return
		}

		if !u.IsAdmin {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"parkpalace-backend/services"
	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// RequireAdmin gates a route group behind a valid bearer token.
func RequireAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization required")
			c.Abort()
			return
		}

		userID, err := auth.ParseToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated admin's id, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

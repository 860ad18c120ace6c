package middleware

import (
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// IsAuthorized resolves the session cookie to a user ID and stores it in the
// request context
func IsAuthorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie("token")

		if err != nil || cookie.Value == "" {
			utils.FullyResponse(c, 403, "Authorization token is empty", utils.ErrAuthenticationKeyNotFound, nil)
			c.Abort()
			return
		}

		userID, err := encryption.ParseJwtToken(cookie.Value)
		if err != nil {
			utils.FullyResponse(c, 403, "Unauthorized", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// MaybeAuthorized resolves the session cookie when present but never rejects
// the request, used on routes that are public for published resources
func MaybeAuthorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie("token")
		if err == nil && cookie.Value != "" {
			if userID, err := encryption.ParseJwtToken(cookie.Value); err == nil {
				c.Set("userID", userID)
			}
		}
		c.Next()
	}
}

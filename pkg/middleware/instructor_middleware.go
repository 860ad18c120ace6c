package middleware

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// IsInstructor requires the caller to carry the Instructor role. Must run
// after IsAuthorized.
func IsInstructor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromContext(c)
		if err != nil {
			utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
			c.Abort()
			return
		}

		user, err := queries.GetUserQueueByID(userID)
		if err != nil {
			utils.FullyResponse(c, 403, "Unauthorized", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		if !user.HasRole("Instructor") {
			utils.FullyResponse(c, 403, "Instructor role required", utils.ErrNotInstructor, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

package auth

import (
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CurrentUser returns the identity resolved from the session cookie
func CurrentUser(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	user, err := getUserByID(userID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching current user", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Current user", nil, user.Sanitize())
}

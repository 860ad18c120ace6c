package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// GetUserIDFromContext retrieves the user ID the auth middleware stored
func GetUserIDFromContext(c *gin.Context) (uint64, error) {
	userIDUntype, exists := c.Get("userID")
	if !exists {
		return 0, fmt.Errorf("userID not found in context")
	}
	userID, ok := userIDUntype.(uint64)
	if !ok {
		return 0, fmt.Errorf("userID has wrong type in context")
	}
	return userID, nil
}

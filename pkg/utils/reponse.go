package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// For simplize gin response
func FullyResponse(c *gin.Context, statusCode int, message string, errorCode interface{}, data interface{}) {
	c.JSON(statusCode, gin.H{"message": message, "error_code": errorCode, "data": data})
}

// Same shape as FullyResponse but logs the underlying error instead of
// sending it to the client
func ServerErrorResponse(c *gin.Context, statusCode int, message string, errorCode string, err error) {
	if err != nil {
		Logger.Error(message,
			zap.String("error_code", errorCode),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(statusCode, gin.H{"message": message, "error_code": errorCode, "data": nil})
}

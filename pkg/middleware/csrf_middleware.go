package middleware

import (
	"time"

	"github.com/dpak1999/cognitionis-server/pkg/cache"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const csrfTokenTTL = 2 * time.Hour

// IssueCSRFToken hands out a fresh token and registers it in Redis
func IssueCSRFToken(c *gin.Context) {
	token, err := encryption.GenerateRandomBase64String()
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error generating CSRF token", utils.ErrGenerateToken, err)
		return
	}

	if err := cache.RedisClient.Set(c, "csrf:"+token, "1", csrfTokenTTL).Err(); err != nil {
		utils.ServerErrorResponse(c, 500, "Error storing CSRF token", utils.ErrStoreRedis, err)
		return
	}

	utils.FullyResponse(c, 200, "CSRF token issued", nil, gin.H{"csrf_token": token})
}

// VerifyCSRF rejects mutating requests without a live X-CSRF-Token header
func VerifyCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			c.Next()
			return
		}

		token := c.GetHeader("X-CSRF-Token")
		if token == "" {
			utils.FullyResponse(c, 403, "CSRF token missing", utils.ErrCSRFTokenInvalid, nil)
			c.Abort()
			return
		}

		_, err := cache.RedisClient.Get(c, "csrf:"+token).Result()
		if err == redis.Nil {
			utils.FullyResponse(c, 403, "CSRF token invalid or expired", utils.ErrCSRFTokenInvalid, nil)
			c.Abort()
			return
		} else if err != nil {
			utils.ServerErrorResponse(c, 500, "Error checking CSRF token", utils.ErrStoreRedis, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

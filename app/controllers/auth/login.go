package auth

import (
	"strings"
	"time"

	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and sets the session cookie
func Login(c *gin.Context) {
	var request loginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	user, err := getUserByEmail(request.Email)
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 400, "User with that email doesnt exist", utils.ErrInvalidEmail, nil)
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching user", utils.ErrGetData, err)
		return
	}

	if !encryption.ComparePassword(user.Password, request.Password) {
		utils.FullyResponse(c, 400, "Incorrect password", utils.ErrInvalidPassword, nil)
		return
	}

	expiresAt := time.Now().Add(time.Hour * 24 * time.Duration(utils.SessionExpiresDays))
	token, err := encryption.GenerateNewJwtToken(user.ID, expiresAt)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error generating session token", utils.ErrGenerateToken, err)
		return
	}

	secure := strings.HasPrefix(utils.BackendURL, "https://")
	c.SetCookie("token", token, utils.SessionExpiresDays*24*60*60, "/", "", secure, true)

	utils.FullyResponse(c, 200, "Login successful", nil, user.Sanitize())
}

// Logout clears the session cookie, always succeeds
func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	utils.FullyResponse(c, 200, "Logged out", nil, nil)
}

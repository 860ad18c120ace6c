package auth

import (
	"fmt"

	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/mail"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const resetCodeLength = 6

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=7,max=128"`
}

// ForgotPassword stores a short reset code on the user and mails it
func ForgotPassword(c *gin.Context) {
	var request forgotPasswordRequest

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

	code, err := encryption.RandStringRunes(resetCodeLength)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error generating reset code", utils.ErrGenerateToken, err)
		return
	}

	if err := setPasswordResetCode(user.ID, code); err != nil {
		utils.ServerErrorResponse(c, 500, "Error saving reset code", utils.ErrSaveData, err)
		return
	}

	body := fmt.Sprintf(`
	<html>
	  <h1>Reset password</h1>
	  <p>Please use the following code to reset your password</p>
	  <h2 style="color: red">%s</h2>
	</html>
	`, code)

	if err := mail.SendEmail(c, user.Email, "Cognitionis password reset code", body); err != nil {
		utils.ServerErrorResponse(c, 500, "Error sending reset email", utils.ErrSendEmail, err)
		return
	}

	utils.FullyResponse(c, 200, "Reset code sent", nil, gin.H{"ok": true})
}

// ResetPassword exchanges a valid code for a new password hash
func ResetPassword(c *gin.Context) {
	var request resetPasswordRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	// The code is only valid for the account it was mailed to
	user, err := getUserByEmail(request.Email)
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 400, "Invalid code", utils.ErrInvalidResetCode, nil)
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching user", utils.ErrGetData, err)
		return
	}
	if user.PasswordResetCode == "" || user.PasswordResetCode != request.Code {
		utils.FullyResponse(c, 400, "Invalid code", utils.ErrInvalidResetCode, nil)
		return
	}

	hashedPassword, err := encryption.HashPassword(request.NewPassword)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error hashing password", utils.ErrHashData, err)
		return
	}

	if err := resetPassword(user.ID, hashedPassword); err != nil {
		utils.ServerErrorResponse(c, 500, "Error resetting password", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 200, "Password reset successful", nil, gin.H{"ok": true})
}

package auth

import (
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=320"`
	Password string `json:"password" binding:"required,min=7,max=128"`
}

// Register creates a new learner account
func Register(c *gin.Context) {
	var request registerRequest

	// Validate request body
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	// Check if email already been used
	_, err := getUserByEmail(request.Email)
	if err == nil {
		utils.FullyResponse(c, 400, "An user with this email already exists", utils.ErrEmailAlreadyUsed, nil)
		return
	} else if err != mongo.ErrNoDocuments {
		utils.ServerErrorResponse(c, 500, "Error checking email", utils.ErrGetData, err)
		return
	}

	// Hash password
	hashedPassword, err := encryption.HashPassword(request.Password)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error hashing password", utils.ErrHashData, err)
		return
	}

	user := models.User{
		ID:        encryption.GenerateID(),
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Roles:     []string{"Learner"},
		Courses:   []uint64{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := createUser(user); err != nil {
		// A concurrent register can beat the pre-check, the unique index
		// on email is the authority
		if mongo.IsDuplicateKeyError(err) {
			utils.FullyResponse(c, 400, "An user with this email already exists", utils.ErrEmailAlreadyUsed, nil)
			return
		}
		utils.ServerErrorResponse(c, 500, "Error creating new user", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 200, "Register successful", nil, gin.H{"ok": true})
}

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type authResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

func resetAuthStores(t *testing.T) {
	t.Cleanup(func() {
		getUserByEmail = queries.GetUserQueueByEmail
		getUserByID = queries.GetUserQueueByID
		createUser = queries.CreateUserQueue
		setPasswordResetCode = queries.SetPasswordResetCodeQueue
		resetPassword = queries.ResetPasswordQueue
	})
}

func performAuth(t *testing.T, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, authResponse) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRegisterDuplicateEmailRace(t *testing.T) {
	resetAuthStores(t)

	// Pre-check sees no user, the insert then trips the unique index
	getUserByEmail = func(email string) (models.User, error) {
		return models.User{}, mongo.ErrNoDocuments
	}
	createUser = func(user models.User) error {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	}

	w, resp := performAuth(t, Register, `{"name":"Alice","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, utils.ErrEmailAlreadyUsed, resp.ErrorCode)
}

func TestResetPasswordValidCode(t *testing.T) {
	resetAuthStores(t)

	getUserByEmail = func(email string) (models.User, error) {
		if email != "alice@example.com" {
			return models.User{}, mongo.ErrNoDocuments
		}
		return models.User{ID: 100, Email: email, PasswordResetCode: "ABC123"}, nil
	}
	var savedHash string
	resetPassword = func(id uint64, hashedPassword string) error {
		savedHash = hashedPassword
		return nil
	}

	w, _ := performAuth(t, ResetPassword, `{"email":"alice@example.com","code":"ABC123","new_password":"freshpass"}`)

	assert.Equal(t, 200, w.Code)
	require.NotEmpty(t, savedHash)
	assert.True(t, encryption.ComparePassword(savedHash, "freshpass"))
}

func TestResetPasswordCodeBoundToEmail(t *testing.T) {
	resetAuthStores(t)

	// The code was mailed to alice, bob must not be able to spend it
	getUserByEmail = func(email string) (models.User, error) {
		switch email {
		case "alice@example.com":
			return models.User{ID: 100, Email: email, PasswordResetCode: "ABC123"}, nil
		case "bob@example.com":
			return models.User{ID: 101, Email: email}, nil
		}
		return models.User{}, mongo.ErrNoDocuments
	}
	resetCalled := false
	resetPassword = func(id uint64, hashedPassword string) error {
		resetCalled = true
		return nil
	}

	w, resp := performAuth(t, ResetPassword, `{"email":"bob@example.com","code":"ABC123","new_password":"freshpass"}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, utils.ErrInvalidResetCode, resp.ErrorCode)
	assert.False(t, resetCalled)
}

func TestResetPasswordWrongCode(t *testing.T) {
	resetAuthStores(t)

	getUserByEmail = func(email string) (models.User, error) {
		return models.User{ID: 100, Email: email, PasswordResetCode: "ABC123"}, nil
	}
	resetCalled := false
	resetPassword = func(id uint64, hashedPassword string) error {
		resetCalled = true
		return nil
	}

	w, resp := performAuth(t, ResetPassword, `{"email":"alice@example.com","code":"XYZ789","new_password":"freshpass"}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, utils.ErrInvalidResetCode, resp.ErrorCode)
	assert.False(t, resetCalled)
}

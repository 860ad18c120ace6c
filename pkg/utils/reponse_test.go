package utils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullyResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	FullyResponse(c, 200, "ok", nil, gin.H{"ok": true})

	assert.Equal(t, 200, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
	assert.Nil(t, body["error_code"])
	assert.NotNil(t, body["data"])
}

func TestServerErrorResponseHidesError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	ServerErrorResponse(c, 500, "Error saving data", ErrSaveData, errors.New("mongo: connection refused"))

	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), ErrSaveData)
	// The underlying error stays in the logs
	assert.NotContains(t, w.Body.String(), "connection refused")
}

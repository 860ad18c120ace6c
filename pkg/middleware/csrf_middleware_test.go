package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCSRFTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(VerifyCSRF())
	r.GET("/read", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.POST("/write", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func TestVerifyCSRFSkipsReads(t *testing.T) {
	r := newCSRFTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
}

func TestVerifyCSRFRejectsMissingToken(t *testing.T) {
	r := newCSRFTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/write", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	assert.Contains(t, w.Body.String(), "csrf_token_invalid")
}

package routes

import (
	"github.com/dpak1999/cognitionis-server/app/controllers/auth"
	"github.com/dpak1999/cognitionis-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func AuthRoute(r *gin.Engine) {
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)
	r.GET("/current-user", middleware.IsAuthorized(), auth.CurrentUser)
	r.POST("/forgot-password", auth.ForgotPassword)
	r.POST("/reset-password", auth.ResetPassword)

	// Mutating routes require the token from here in X-CSRF-Token
	r.GET("/csrf", middleware.IssueCSRFToken)
}

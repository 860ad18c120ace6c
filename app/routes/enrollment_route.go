package routes

import (
	"github.com/dpak1999/cognitionis-server/app/controllers/enrollment"
	"github.com/dpak1999/cognitionis-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func EnrollmentRoute(r *gin.Engine) {
	r.GET("/check-enrollment/:courseID", middleware.IsAuthorized(), enrollment.CheckEnrollment)
	r.POST("/free-enrollment/:courseID", middleware.IsAuthorized(), enrollment.FreeEnrollment)
	r.POST("/paid-enrollment/:courseID", middleware.IsAuthorized(), enrollment.PaidEnrollment)
	r.GET("/stripe-success/:courseID", middleware.IsAuthorized(), enrollment.ReconcilePayment)

	r.POST("/mark-completed", middleware.IsAuthorized(), enrollment.MarkCompleted)
	r.POST("/list-completed", middleware.IsAuthorized(), enrollment.ListCompleted)
}

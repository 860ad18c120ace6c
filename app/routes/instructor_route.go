package routes

import (
	"github.com/dpak1999/cognitionis-server/app/controllers/instructor"
	"github.com/dpak1999/cognitionis-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func InstructorRoute(r *gin.Engine) {
	r.POST("/make-instructor", middleware.IsAuthorized(), instructor.MakeInstructor)
	r.POST("/get-account-status", middleware.IsAuthorized(), instructor.GetAccountStatus)
	r.GET("/current-instructor", middleware.IsAuthorized(), instructor.CurrentInstructor)
	r.GET("/instructor-courses", middleware.IsAuthorized(), instructor.InstructorCourses)
}

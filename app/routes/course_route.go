package routes

import (
	courses "github.com/dpak1999/cognitionis-server/app/controllers/course"
	"github.com/dpak1999/cognitionis-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func CourseRoute(r *gin.Engine) {
	// Public catalog
	r.GET("/courses", courses.ListCourses)
	r.GET("/course/:slug", middleware.MaybeAuthorized(), courses.GetCourse)

	// Authoring, instructor only
	r.POST("/course", middleware.IsAuthorized(), middleware.IsInstructor(), courses.CreateCourse)
	r.PUT("/course/:slug", middleware.IsAuthorized(), middleware.IsInstructor(), courses.UpdateCourse)
	r.PUT("/course/publish/:courseID", middleware.IsAuthorized(), middleware.IsInstructor(), courses.PublishCourse)
	r.PUT("/course/unpublish/:courseID", middleware.IsAuthorized(), middleware.IsInstructor(), courses.UnpublishCourse)

	// Lessons
	r.POST("/course/lesson/:slug/:instructorID", middleware.IsAuthorized(), middleware.IsInstructor(), courses.AddLesson)
	r.PUT("/course/lesson/:slug/:instructorID", middleware.IsAuthorized(), middleware.IsInstructor(), courses.UpdateLesson)
	r.PUT("/course/:slug/:lessonID", middleware.IsAuthorized(), middleware.IsInstructor(), courses.RemoveLesson)

	// Media proxy
	r.POST("/course/upload-image", middleware.IsAuthorized(), middleware.IsInstructor(), courses.UploadImage)
	r.POST("/course/remove-image", middleware.IsAuthorized(), middleware.IsInstructor(), courses.RemoveImage)
	r.POST("/course/video-upload", middleware.IsAuthorized(), middleware.IsInstructor(), courses.UploadVideo)
	r.POST("/course/video-remove", middleware.IsAuthorized(), middleware.IsInstructor(), courses.RemoveVideo)
}

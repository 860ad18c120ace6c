package courses

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetCourse returns a single course by slug. Published courses are visible
// to anyone, unpublished ones only to their instructor.
func GetCourse(c *gin.Context) {
	course, err := getCourseBySlug(c.Param("slug"))
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 404, "Course not exist", utils.ErrCourseNotExist, nil)
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return
	}

	if !course.Published {
		userID, err := utils.GetUserIDFromContext(c)
		if err != nil || course.InstructorID != userID {
			utils.FullyResponse(c, 404, "Course not exist", utils.ErrCourseNotExist, nil)
			return
		}
	}

	utils.FullyResponse(c, 200, "Successfully get course data", nil, course)
}

// ListCourses returns the public catalog of published courses
func ListCourses(c *gin.Context) {
	courses, err := queries.ListPublishedCoursesQueue()
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching courses", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Published courses", nil, courses)
}

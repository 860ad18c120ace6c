package courses

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// PublishCourse makes a course visible in the public catalog
func PublishCourse(c *gin.Context) {
	setPublished(c, true)
}

// UnpublishCourse removes a course from the public catalog
func UnpublishCourse(c *gin.Context) {
	setPublished(c, false)
}

func setPublished(c *gin.Context, published bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	courseID, err := utils.StrToUint64(c.Param("courseID"))
	if err != nil {
		utils.FullyResponse(c, 400, "Invalid course ID", utils.ErrMissingCourseID, nil)
		return
	}

	course, err := getCourseByID(courseID)
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 404, "Course not exist", utils.ErrCourseNotExist, nil)
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return
	}

	if course.InstructorID != userID {
		utils.FullyResponse(c, 403, "Only the course instructor can do this", utils.ErrNotCourseOwner, nil)
		return
	}

	if err := queries.SetPublishedQueue(course.ID, published); err != nil {
		utils.ServerErrorResponse(c, 500, "Error updating course", utils.ErrSaveData, err)
		return
	}

	message := "Course unpublished"
	if published {
		message = "Course published"
	}
	utils.FullyResponse(c, 200, message, nil, gin.H{"published": published})
}

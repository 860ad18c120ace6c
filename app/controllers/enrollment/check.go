package enrollment

import (
	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// loadUserAndCourse resolves the calling user and the course ID route param.
// Writes the error response itself, callers bail when ok is false.
func loadUserAndCourse(c *gin.Context) (models.User, models.Course, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return models.User{}, models.Course{}, false
	}

	courseID, err := utils.StrToUint64(c.Param("courseID"))
	if err != nil {
		utils.FullyResponse(c, 400, "Invalid course ID", utils.ErrMissingCourseID, nil)
		return models.User{}, models.Course{}, false
	}

	user, err := getUserByID(userID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching user", utils.ErrGetData, err)
		return models.User{}, models.Course{}, false
	}

	course, err := getCourseByID(courseID)
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 404, "Course not exist", utils.ErrCourseNotExist, nil)
		return models.User{}, models.Course{}, false
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return models.User{}, models.Course{}, false
	}

	return user, course, true
}

// CheckEnrollment reports whether the caller is enrolled in the course.
// Pure read, no state change.
func CheckEnrollment(c *gin.Context) {
	user, course, ok := loadUserAndCourse(c)
	if !ok {
		return
	}

	utils.FullyResponse(c, 200, "Enrollment status", nil, gin.H{
		"status": user.IsEnrolled(course.ID),
		"course": course,
	})
}

package courses

import (
	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Persistence collaborators, injectable so the handlers can run
// against fakes.
var (
	getCourseBySlug = queries.GetCourseQueueBySlug
	getCourseByID   = queries.GetCourseQueueByID
	addLesson       = queries.AddLessonQueue
	updateLesson    = queries.UpdateLessonQueue
	removeLesson    = queries.RemoveLessonQueue
)

// loadOwnedCourse fetches the course by slug and verifies the caller is its
// instructor. Writes the error response itself, callers just bail when
// ok is false.
func loadOwnedCourse(c *gin.Context, slug string) (models.Course, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return models.Course{}, false
	}

	course, err := getCourseBySlug(slug)
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 404, "Course not exist", utils.ErrCourseNotExist, nil)
		return models.Course{}, false
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return models.Course{}, false
	}

	if course.InstructorID != userID {
		utils.FullyResponse(c, 403, "Only the course instructor can do this", utils.ErrNotCourseOwner, nil)
		return models.Course{}, false
	}

	return course, true
}

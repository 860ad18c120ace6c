package enrollment

import (
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type markCompletedRequest struct {
	CourseID uint64 `json:"course_id" binding:"required"`
	LessonID uint64 `json:"lesson_id" binding:"required"`
}

type listCompletedRequest struct {
	CourseID uint64 `json:"course_id" binding:"required"`
}

// MarkCompleted records a completed lesson for the caller. Completing the
// same lesson twice is a no-op.
func MarkCompleted(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	var request markCompletedRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	if err := markLessonCompleted(userID, request.CourseID, request.LessonID); err != nil {
		utils.ServerErrorResponse(c, 500, "Error saving completion", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 200, "Lesson marked completed", nil, gin.H{"ok": true})
}

// ListCompleted returns the caller's completed lesson IDs for a course
func ListCompleted(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	var request listCompletedRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	record, err := getCompletion(userID, request.CourseID)
	if err == mongo.ErrNoDocuments {
		utils.FullyResponse(c, 200, "Completed lessons", nil, []uint64{})
		return
	} else if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching completion", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Completed lessons", nil, record.Lessons)
}

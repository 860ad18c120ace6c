package courses

import (
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

type lessonRequest struct {
	Title       string              `json:"title" binding:"required,min=3,max=300"`
	Content     string              `json:"content"`
	Video       *models.MediaObject `json:"video"`
	FreePreview bool                `json:"free_preview"`
}

type updateLessonRequest struct {
	ID          uint64              `json:"id" binding:"required"`
	Title       string              `json:"title" binding:"required,min=3,max=300"`
	Content     string              `json:"content"`
	Video       *models.MediaObject `json:"video"`
	FreePreview bool                `json:"free_preview"`
}

// AddLesson appends a lesson to the course. Lesson slugs are derived from
// the title and are not required to be unique.
func AddLesson(c *gin.Context) {
	course, ok := loadOwnedCourse(c, c.Param("slug"))
	if !ok {
		return
	}

	var request lessonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	lesson := models.Lesson{
		ID:          encryption.GenerateID(),
		Title:       request.Title,
		Slug:        slug.Make(request.Title),
		Content:     request.Content,
		Video:       request.Video,
		FreePreview: request.FreePreview,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := addLesson(course.ID, lesson); err != nil {
		utils.ServerErrorResponse(c, 500, "Error saving lesson", utils.ErrSaveData, err)
		return
	}

	updated, err := getCourseByID(course.ID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 201, "Successfully added lesson", nil, updated)
}

// UpdateLesson updates one lesson in place, addressed by its ID
func UpdateLesson(c *gin.Context) {
	course, ok := loadOwnedCourse(c, c.Param("slug"))
	if !ok {
		return
	}

	var request updateLessonRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	found := false
	for _, l := range course.Lessons {
		if l.ID == request.ID {
			found = true
			break
		}
	}
	if !found {
		utils.FullyResponse(c, 404, "Lesson not exist", utils.ErrLessonNotExist, nil)
		return
	}

	lesson := models.Lesson{
		ID:          request.ID,
		Title:       request.Title,
		Slug:        slug.Make(request.Title),
		Content:     request.Content,
		Video:       request.Video,
		FreePreview: request.FreePreview,
	}

	if _, err := updateLesson(course.ID, lesson); err != nil {
		utils.ServerErrorResponse(c, 500, "Error updating lesson", utils.ErrSaveData, err)
		return
	}

	updated, err := getCourseByID(course.ID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Successfully updated lesson", nil, updated)
}

// RemoveLesson deletes one lesson from the course by its ID
func RemoveLesson(c *gin.Context) {
	course, ok := loadOwnedCourse(c, c.Param("slug"))
	if !ok {
		return
	}

	lessonID, err := utils.StrToUint64(c.Param("lessonID"))
	if err != nil {
		utils.FullyResponse(c, 400, "Invalid lesson ID", utils.ErrBadRequest, nil)
		return
	}

	if _, err := removeLesson(course.ID, lessonID); err != nil {
		utils.ServerErrorResponse(c, 500, "Error removing lesson", utils.ErrSaveData, err)
		return
	}

	updated, err := getCourseByID(course.ID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Successfully removed lesson", nil, updated)
}

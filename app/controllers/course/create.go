package courses

import (
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/encryption"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/mongo"
)

// createCourseRequest is the type for the request body of creating a new course.
type createCourseRequest struct {
	Name        string              `json:"name" binding:"required,min=3,max=300"`
	Description string              `json:"description" binding:"required"`
	Price       *float64            `json:"price" binding:"omitempty,courseprice"`
	Paid        *bool               `json:"paid"`
	Category    string              `json:"category"`
	Image       *models.MediaObject `json:"image"`
}

// CreateCourse creates a new course owned by the calling instructor
func CreateCourse(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	var request createCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	courseSlug := slug.Make(request.Name)

	// Course slugs are unique
	_, err = getCourseBySlug(courseSlug)
	if err == nil {
		utils.FullyResponse(c, 400, "There is already a course with this title", utils.ErrCourseSlugTaken, nil)
		return
	} else if err != mongo.ErrNoDocuments {
		utils.ServerErrorResponse(c, 500, "Error checking course slug", utils.ErrGetData, err)
		return
	}

	course := models.Course{
		ID:           encryption.GenerateID(),
		Name:         request.Name,
		Slug:         courseSlug,
		Description:  request.Description,
		Price:        models.DefaultPrice,
		Paid:         true,
		Category:     request.Category,
		Image:        request.Image,
		InstructorID: userID,
		Lessons:      []models.Lesson{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if request.Price != nil {
		course.Price = *request.Price
	}
	if request.Paid != nil {
		course.Paid = *request.Paid
	}

	if err := queries.CreateCourseQueue(course); err != nil {
		utils.ServerErrorResponse(c, 500, "Error saving course", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 201, "Successfully created new course", nil, course)
}

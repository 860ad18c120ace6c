package courses

import (
	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type updateCourseRequest struct {
	Name        string              `json:"name" binding:"omitempty,min=3,max=300"`
	Description string              `json:"description"`
	Price       *float64            `json:"price" binding:"omitempty,courseprice"`
	Paid        *bool               `json:"paid"`
	Category    string              `json:"category"`
	Image       *models.MediaObject `json:"image"`
}

// UpdateCourse updates course metadata. The slug stays stable so existing
// links keep working.
func UpdateCourse(c *gin.Context) {
	course, ok := loadOwnedCourse(c, c.Param("slug"))
	if !ok {
		return
	}

	var request updateCourseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.FullyResponse(c, 400, "Invalid request", utils.ErrBadRequest, err.Error())
		return
	}

	fields := bson.M{}
	if request.Name != "" {
		fields["name"] = request.Name
	}
	if request.Description != "" {
		fields["description"] = request.Description
	}
	if request.Price != nil {
		fields["price"] = *request.Price
	}
	if request.Paid != nil {
		fields["paid"] = *request.Paid
	}
	if request.Category != "" {
		fields["category"] = request.Category
	}
	if request.Image != nil {
		fields["image"] = request.Image
	}

	if err := queries.UpdateCourseQueue(course.ID, fields); err != nil {
		utils.ServerErrorResponse(c, 500, "Error updating course", utils.ErrSaveData, err)
		return
	}

	updated, err := getCourseByID(course.ID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching course", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Successfully updated course", nil, updated)
}

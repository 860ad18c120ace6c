package instructor

import (
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// InstructorCourses lists the caller's own courses, published or not
func InstructorCourses(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.FullyResponse(c, 403, "UserID not found in context", utils.ErrUserIDNotFound, nil)
		return
	}

	courses, err := queries.ListInstructorCoursesQueue(userID)
	if err != nil {
		utils.ServerErrorResponse(c, 500, "Error fetching courses", utils.ErrGetData, err)
		return
	}

	utils.FullyResponse(c, 200, "Instructor courses", nil, courses)
}

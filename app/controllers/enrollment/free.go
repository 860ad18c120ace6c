package enrollment

import (
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// FreeEnrollment enrolls the caller in a free course. On a paid course this
// is a deliberate silent no-op, not an error.
func FreeEnrollment(c *gin.Context) {
	user, course, ok := loadUserAndCourse(c)
	if !ok {
		return
	}

	if course.Paid {
		utils.FullyResponse(c, 200, "Not a free course", nil, gin.H{"enrolled": false})
		return
	}

	// $addToSet keeps re-enrollment a no-op
	if err := enrollUser(user.ID, course.ID); err != nil {
		utils.ServerErrorResponse(c, 500, "Error enrolling user", utils.ErrSaveData, err)
		return
	}

	utils.FullyResponse(c, 200, "Congratulations! You have successfully enrolled", nil, gin.H{
		"enrolled": true,
		"course":   course,
	})
}
